// Package paradigm generates the complete inflected paradigms of Latin
// nouns, adjectives, pronouns and verbs from a lexical entry's grammatical
// metadata.
//
// Every function is a pure computation over its arguments: nothing is
// cached, nothing is shared, and calls are safe from any number of
// goroutines. Entries that lack the data to generate yield empty or partial
// results rather than errors; LexicalEntry.Validate explains why.
package paradigm

import (
	"sort"
	"strings"
)

// Paradigm is a generated paradigm flattened to serialized form keys, the
// shape persisted alongside lexical entries and consumed by the indexer.
type Paradigm map[string]string

// participlePrefix namespaces participle keys within a verb's Paradigm.
const participlePrefix = "ptc_"

// Keys returns the paradigm's keys in sorted order.
func (p Paradigm) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParticipleKey returns the Paradigm key under which a participle is
// stored, e.g. "ptc_perf_pass".
func ParticipleKey(k ParticipleKind) string {
	return participlePrefix + string(k)
}

// IsParticipleKey reports whether key names a participle.
func IsParticipleKey(key string) bool {
	return strings.HasPrefix(key, participlePrefix)
}

// Generate dispatches an entry to the generator for its part of speech and
// flattens the result. Adjectives are flattened with gender-suffixed keys
// ("nom_sg_f"); verbs carry their participles under ParticipleKey keys.
// Malformed overrides are skipped. Uninflected parts of speech and entries
// that cannot be generated yield an empty Paradigm.
func Generate(e LexicalEntry) Paradigm {
	pos, err := ParsePartOfSpeech(e.PartOfSpeech)
	if err != nil {
		return Paradigm{}
	}

	switch pos {
	case POSNoun:
		overrides, _ := ParseNominalOverrides(e.Overrides)
		if e.Invariable {
			return Paradigm(DeclineInvariable(e.Lemma, overrides).Strings())
		}
		d, _ := ParseDeclension(e.Declension)
		g, _ := ParseGender(e.Gender)
		return Paradigm(DeclineNoun(e.Lemma, d, g, e.Genitive, overrides, e.Parisyllabic).Strings())

	case POSAdjective:
		overrides, _ := ParseNominalOverrides(e.Overrides)
		if e.Invariable {
			return Paradigm(DeclineInvariable(e.Lemma, overrides).Strings())
		}
		d, _ := ParseDeclension(e.Declension)
		out := make(Paradigm)
		for g, forms := range DeclineAdjective(e.Lemma, d, e.Genitive, overrides) {
			for k, v := range forms {
				out[k.WithGender(g).String()] = v
			}
		}
		return out

	case POSPronoun:
		overrides, _ := ParseNominalOverrides(e.Overrides)
		return Paradigm(NominalForms(resolve(DeclinePronoun(e.Lemma), overrides)).Strings())

	case POSVerb:
		c, _ := ParseConjugation(e.Conjugation)
		overrides, _ := ParseVerbalOverrides(e.Overrides)
		out := Paradigm(ConjugateVerb(e.Lemma, c, e.PrincipalParts, overrides).Strings())
		for k, v := range DeriveParticiples(e.Lemma, c, e.PrincipalParts) {
			out[ParticipleKey(k)] = v
		}
		return out
	}
	return Paradigm{}
}
