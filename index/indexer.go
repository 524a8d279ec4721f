// Package index flattens generated paradigms into a reverse lookup from
// surface form to the entries and slots that produce it.
package index

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/paradigm"
)

// InflectedForm is one row of the index: a surface form and the slot of
// the entry that generates it.
type InflectedForm struct {
	Surface      string `json:"surface"`
	Normalized   string `json:"normalized"`
	EntryID      string `json:"entry_id"`
	Lemma        string `json:"lemma"`
	PartOfSpeech string `json:"part_of_speech"`
	Key          string `json:"key"`
}

// Sink receives the rows of a completed run. Replace swaps the whole
// index at once: on error the previous contents must be left in place.
type Sink interface {
	Replace(ctx context.Context, runID string, rows []InflectedForm) error
}

// Problem records an entry that could not be fully generated.
type Problem struct {
	EntryID string `json:"entry_id"`
	Lemma   string `json:"lemma"`
	Error   string `json:"error"`
}

// Report summarizes a run.
type Report struct {
	RunID       string        `json:"run_id"`
	Entries     int           `json:"entries"`
	Indexed     int           `json:"indexed"`
	Uninflected int           `json:"uninflected"`
	Forms       int           `json:"forms"`
	Empty       []string      `json:"empty,omitempty"`
	Problems    []Problem     `json:"problems,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// DefaultWorkers is used when Indexer.Workers is not positive.
const DefaultWorkers = 4

// Indexer generates the paradigm of every entry and hands the rows to a
// Sink.
type Indexer struct {
	Workers int
	Logger  *zap.Logger
}

// New returns an Indexer with the given worker count. A nil logger
// disables logging.
func New(workers int, logger *zap.Logger) *Indexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Indexer{Workers: workers, Logger: logger}
}

type outcome struct {
	rows        []InflectedForm
	empty       bool
	uninflected bool
	problem     error
}

// Run indexes entries and writes the result to sink. Rows come out in
// entry order, and within an entry in key order, whatever the number of
// workers. Entries that generate nothing are reported, not fatal. If ctx
// is cancelled the sink is not touched and ctx's error is returned.
func (ix *Indexer) Run(ctx context.Context, entries []paradigm.LexicalEntry, sink Sink) (*Report, error) {
	log := ix.Logger
	if log == nil {
		log = zap.NewNop()
	}
	workers := ix.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	start := time.Now()
	rep := &Report{RunID: uuid.NewString(), Entries: len(entries)}
	log = log.With(zap.String("run_id", rep.RunID))
	log.Info("index run started", zap.Int("entries", len(entries)), zap.Int("workers", workers))

	outcomes := make([]outcome, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range entries {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = indexEntry(entries[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("index run aborted", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		log.Warn("index run aborted", zap.Error(err))
		return nil, err
	}

	var rows []InflectedForm
	for i, o := range outcomes {
		e := entries[i]
		switch {
		case o.uninflected:
			rep.Uninflected++
		case o.empty:
			rep.Empty = append(rep.Empty, e.Ref())
		default:
			rep.Indexed++
		}
		if o.problem != nil {
			rep.Problems = append(rep.Problems, Problem{EntryID: e.Ref(), Lemma: e.Lemma, Error: o.problem.Error()})
			log.Debug("entry problem", zap.String("entry", e.Ref()), zap.Error(o.problem))
		}
		rows = append(rows, o.rows...)
	}
	rep.Forms = len(rows)

	if err := sink.Replace(ctx, rep.RunID, rows); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}
	rep.Duration = time.Since(start)
	log.Info("index run finished",
		zap.Int("indexed", rep.Indexed),
		zap.Int("empty", len(rep.Empty)),
		zap.Int("uninflected", rep.Uninflected),
		zap.Int("problems", len(rep.Problems)),
		zap.Int("forms", rep.Forms),
		zap.Duration("duration", rep.Duration))
	return rep, nil
}

func indexEntry(e paradigm.LexicalEntry) outcome {
	var o outcome
	pos, err := paradigm.ParsePartOfSpeech(e.PartOfSpeech)
	if err != nil {
		o.problem = err
		o.empty = true
		return o
	}
	if !pos.Inflected() {
		o.uninflected = true
		o.rows = []InflectedForm{row(e, pos, "", e.Lemma)}
		return o
	}
	o.problem = e.Validate()

	p := paradigm.Generate(e)
	if len(p) == 0 {
		o.empty = true
		if o.problem == nil {
			o.problem = fmt.Errorf("entry %q: nothing generated: %w", e.Lemma, paradigm.ErrMissingData)
		}
		return o
	}
	o.rows = make([]InflectedForm, 0, len(p))
	for _, k := range p.Keys() {
		o.rows = append(o.rows, row(e, pos, k, p[k]))
	}
	return o
}

func row(e paradigm.LexicalEntry, pos paradigm.PartOfSpeech, key, surface string) InflectedForm {
	return InflectedForm{
		Surface:      surface,
		Normalized:   paradigm.Normalize(surface),
		EntryID:      e.Ref(),
		Lemma:        e.Lemma,
		PartOfSpeech: string(pos),
		Key:          key,
	}
}

// ErrNoRun is returned by lookups against a sink no run has filled yet.
var ErrNoRun = errors.New("index has not been built")
