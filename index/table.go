package index

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/cours-de-latin/paradigm"
)

// reWord matches a single Latin word token, macrons and breves included.
var reWord = regexp.MustCompile(`[a-zA-ZÀ-ÿ\x{0100}-\x{024F}\x{0300}-\x{036F}]+`)

// enclitics are stripped, longest first, when a form has no match of its
// own. Lookups fold v to u, so "ve" is covered by "ue".
var enclitics = []string{"que", "ne", "ue"}

// Table is an in-memory Sink answering lookups by surface form. Keys are
// folded (see paradigm.Fold), so "Vēnit" finds "uenit". It is safe for
// concurrent use.
type Table struct {
	mu    sync.RWMutex
	runID string
	rows  int
	forms map[string][]InflectedForm
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{forms: make(map[string][]InflectedForm)}
}

// Replace swaps in a new index.
func (t *Table) Replace(ctx context.Context, runID string, rows []InflectedForm) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	forms := make(map[string][]InflectedForm)
	for _, r := range rows {
		k := paradigm.Fold(r.Normalized)
		forms[k] = append(forms[k], r)
	}
	t.mu.Lock()
	t.runID, t.rows, t.forms = runID, len(rows), forms
	t.mu.Unlock()
	return nil
}

// RunID returns the identifier of the run the table was last filled by.
func (t *Table) RunID() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.runID
}

// Len returns the number of rows held.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rows
}

// Result is the answer to a lookup. Enclitic is set when the matches were
// found only after stripping it.
type Result struct {
	Query    string          `json:"query"`
	Enclitic string          `json:"enclitic,omitempty"`
	Matches  []InflectedForm `json:"matches"`
}

// Lookup finds every slot that produces form. Multi-word forms such as
// "amatus est" are matched whole. When form itself is unknown, a trailing
// enclitic (-que, -ne, -ve) is stripped and the rest looked up.
func (t *Table) Lookup(form string) Result {
	res := Result{Query: form, Matches: []InflectedForm{}}
	key := paradigm.Fold(strings.TrimSpace(form))
	if key == "" {
		return res
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	if m, ok := t.forms[key]; ok {
		res.Matches = append(res.Matches, m...)
		return res
	}
	for _, enc := range enclitics {
		stem, ok := strings.CutSuffix(key, enc)
		if !ok || stem == "" {
			continue
		}
		if m, ok := t.forms[stem]; ok {
			res.Enclitic = enc
			res.Matches = append(res.Matches, m...)
			return res
		}
	}
	return res
}

// TokenResult pairs a token of running text with its lookup.
type TokenResult struct {
	Token string `json:"token"`
	Result
}

// LookupText tokenizes text into words and looks each one up.
func (t *Table) LookupText(text string) []TokenResult {
	tokens := reWord.FindAllString(text, -1)
	out := make([]TokenResult, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenResult{Token: tok, Result: t.Lookup(tok)})
	}
	return out
}
