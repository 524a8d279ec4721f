// Package api exposes the generators and the form index as a JSON HTTP
// API.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/cours-de-latin/paradigm/index"
)

// Handler serves the API. The index table may be refilled while the
// handler is serving.
type Handler struct {
	table  *index.Table
	logger *zap.Logger
}

// NewHandler returns a Handler answering lookups from table.
func NewHandler(table *index.Table, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{table: table, logger: logger}
}

// Router builds the route tree:
//
//	GET  /health
//	GET  /api/nouns?lemma=&declension=&gender=&genitive=[&parisyllabic=true][&invariable=true]
//	GET  /api/adjectives?lemma=&declension=&genitive=
//	GET  /api/pronouns?lemma=
//	GET  /api/verbs?lemma=&conjugation=[&parts=]
//	GET  /api/participles?lemma=&conjugation=[&parts=]
//	POST /api/paradigm   body: a lexical entry
//	GET  /api/lookup?form=
//	POST /api/lookup/text   body: {"text":"..."}
//	GET  /api/normalize?text=
func (h *Handler) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/health", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/nouns", h.nouns)
		r.Get("/adjectives", h.adjectives)
		r.Get("/pronouns", h.pronouns)
		r.Get("/verbs", h.verbs)
		r.Get("/participles", h.participles)
		r.Post("/paradigm", h.generate)
		r.Get("/lookup", h.lookup)
		r.Post("/lookup/text", h.lookupText)
		r.Get("/normalize", h.normalize)
	})
	return r
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)))
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("encode error", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}
