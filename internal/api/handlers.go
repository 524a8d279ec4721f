package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cours-de-latin/paradigm"
	"github.com/cours-de-latin/paradigm/index"
)

type formsResponse struct {
	Lemma string            `json:"lemma"`
	Forms map[string]string `json:"forms"`
}

type adjectiveResponse struct {
	Lemma string                       `json:"lemma"`
	Forms map[string]map[string]string `json:"forms"`
}

type pronounResponse struct {
	Lemma    string            `json:"lemma"`
	Gendered bool              `json:"gendered"`
	Forms    map[string]string `json:"forms"`
}

type participlesResponse struct {
	Lemma       string                             `json:"lemma"`
	Participles map[paradigm.ParticipleKind]string `json:"participles"`
}

type paradigmResponse struct {
	EntryID  string            `json:"entry_id"`
	Paradigm paradigm.Paradigm `json:"paradigm"`
	Problems []string          `json:"problems,omitempty"`
}

type normalizeResponse struct {
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
	Folded     string `json:"folded"`
}

type healthResponse struct {
	Status string `json:"status"`
	RunID  string `json:"run_id,omitempty"`
	Forms  int    `json:"forms"`
}

// requireParam reads a mandatory query parameter, writing a 400 when it
// is absent.
func (h *Handler) requireParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("missing '%s' query parameter", name))
		return "", false
	}
	return v, true
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", RunID: h.table.RunID(), Forms: h.table.Len()})
}

func (h *Handler) nouns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lemma, ok := h.requireParam(w, r, "lemma")
	if !ok {
		return
	}
	invariable, _ := strconv.ParseBool(q.Get("invariable"))
	if invariable {
		h.writeJSON(w, http.StatusOK, formsResponse{Lemma: lemma, Forms: paradigm.DeclineInvariable(lemma, nil).Strings()})
		return
	}
	d, err := paradigm.ParseDeclension(q.Get("declension"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g, err := paradigm.ParseGender(q.Get("gender"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	parisyllabic, _ := strconv.ParseBool(q.Get("parisyllabic"))

	forms := paradigm.DeclineNoun(lemma, d, g, q.Get("genitive"), nil, parisyllabic)
	if len(forms) == 0 {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("no forms for %q: check the genitive", lemma))
		return
	}
	h.writeJSON(w, http.StatusOK, formsResponse{Lemma: lemma, Forms: forms.Strings()})
}

func (h *Handler) adjectives(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lemma, ok := h.requireParam(w, r, "lemma")
	if !ok {
		return
	}
	d, err := paradigm.ParseDeclension(q.Get("declension"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := make(map[string]map[string]string)
	for g, forms := range paradigm.DeclineAdjective(lemma, d, q.Get("genitive"), nil) {
		if len(forms) > 0 {
			out[g.String()] = forms.Strings()
		}
	}
	if len(out) == 0 {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("no forms for %q: check the genitive", lemma))
		return
	}
	h.writeJSON(w, http.StatusOK, adjectiveResponse{Lemma: lemma, Forms: out})
}

func (h *Handler) pronouns(w http.ResponseWriter, r *http.Request) {
	lemma, ok := h.requireParam(w, r, "lemma")
	if !ok {
		return
	}
	forms := paradigm.DeclinePronoun(lemma)
	if len(forms) == 0 {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("pronoun %q not found", lemma))
		return
	}
	h.writeJSON(w, http.StatusOK, pronounResponse{Lemma: lemma, Gendered: forms.Gendered(), Forms: forms.Strings()})
}

func (h *Handler) verbParams(w http.ResponseWriter, r *http.Request) (lemma string, c paradigm.Conjugation, parts string, ok bool) {
	q := r.URL.Query()
	if lemma, ok = h.requireParam(w, r, "lemma"); !ok {
		return
	}
	c, err := paradigm.ParseConjugation(q.Get("conjugation"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return "", 0, "", false
	}
	return lemma, c, q.Get("parts"), true
}

func (h *Handler) verbs(w http.ResponseWriter, r *http.Request) {
	lemma, c, parts, ok := h.verbParams(w, r)
	if !ok {
		return
	}
	forms := paradigm.ConjugateVerb(lemma, c, parts, nil)
	if len(forms) == 0 {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("no forms for %q: check the principal parts", lemma))
		return
	}
	h.writeJSON(w, http.StatusOK, formsResponse{Lemma: lemma, Forms: forms.Strings()})
}

func (h *Handler) participles(w http.ResponseWriter, r *http.Request) {
	lemma, c, parts, ok := h.verbParams(w, r)
	if !ok {
		return
	}
	ptc := paradigm.DeriveParticiples(lemma, c, parts)
	if len(ptc) == 0 {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("no participles for %q", lemma))
		return
	}
	h.writeJSON(w, http.StatusOK, participlesResponse{Lemma: lemma, Participles: ptc})
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var e paradigm.LexicalEntry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		h.writeError(w, http.StatusBadRequest, "body must be a JSON lexical entry")
		return
	}
	var problems []string
	if err := e.Validate(); err != nil {
		if _, perr := paradigm.ParsePartOfSpeech(e.PartOfSpeech); perr != nil || e.Lemma == "" {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		problems = splitJoined(err)
	}
	p := paradigm.Generate(e)
	if len(p) == 0 {
		h.writeJSON(w, http.StatusNotFound, paradigmResponse{EntryID: e.Ref(), Paradigm: p, Problems: problems})
		return
	}
	h.writeJSON(w, http.StatusOK, paradigmResponse{EntryID: e.Ref(), Paradigm: p, Problems: problems})
}

// splitJoined flattens an errors.Join tree into one message per problem.
func splitJoined(err error) []string {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range j.Unwrap() {
			out = append(out, splitJoined(e)...)
		}
		return out
	}
	return []string{err.Error()}
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	form, ok := h.requireParam(w, r, "form")
	if !ok {
		return
	}
	res := h.table.Lookup(form)
	status := http.StatusOK
	if len(res.Matches) == 0 {
		status = http.StatusNotFound
	}
	h.writeJSON(w, status, res)
}

func (h *Handler) lookupText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		h.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Results []index.TokenResult `json:"results"`
	}{h.table.LookupText(body.Text)})
}

func (h *Handler) normalize(w http.ResponseWriter, r *http.Request) {
	text, ok := h.requireParam(w, r, "text")
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, normalizeResponse{
		Text:       text,
		Normalized: paradigm.Normalize(text),
		Folded:     paradigm.Fold(text),
	})
}
