package paradigm

import (
	"fmt"
	"strings"
)

// PartOfSpeech represents the grammatical category of a lexical entry.
type PartOfSpeech string

const (
	POSNoun         PartOfSpeech = "noun"
	POSAdjective    PartOfSpeech = "adjective"
	POSPronoun      PartOfSpeech = "pronoun"
	POSVerb         PartOfSpeech = "verb"
	POSAdverb       PartOfSpeech = "adverb"
	POSConjunction  PartOfSpeech = "conjunction"
	POSPreposition  PartOfSpeech = "preposition"
	POSInterjection PartOfSpeech = "interjection"
	POSNumeral      PartOfSpeech = "numeral"
)

// posAliases maps the abbreviations found in dictionary-style data to a
// PartOfSpeech.
var posAliases = map[string]PartOfSpeech{
	"n":      POSNoun,
	"nom":    POSNoun,
	"adj":    POSAdjective,
	"a":      POSAdjective,
	"pron":   POSPronoun,
	"p":      POSPronoun,
	"v":      POSVerb,
	"adv":    POSAdverb,
	"d":      POSAdverb,
	"conj":   POSConjunction,
	"c":      POSConjunction,
	"prep":   POSPreposition,
	"r":      POSPreposition,
	"interj": POSInterjection,
	"i":      POSInterjection,
	"num":    POSNumeral,
	"m":      POSNumeral,
}

// ParsePartOfSpeech accepts either the full name ("noun") or a common
// abbreviation ("n.", "adj.").
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	k := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ".")
	switch p := PartOfSpeech(k); p {
	case POSNoun, POSAdjective, POSPronoun, POSVerb, POSAdverb,
		POSConjunction, POSPreposition, POSInterjection, POSNumeral:
		return p, nil
	}
	if p, ok := posAliases[k]; ok {
		return p, nil
	}
	return "", fmt.Errorf("part of speech %q: %w", s, ErrUnknownParadigm)
}

// Inflected reports whether entries of this part of speech have a paradigm.
func (p PartOfSpeech) Inflected() bool {
	switch p {
	case POSNoun, POSAdjective, POSPronoun, POSVerb:
		return true
	}
	return false
}

// Nominal reports whether p declines by case and number.
func (p PartOfSpeech) Nominal() bool {
	return p == POSNoun || p == POSAdjective || p == POSPronoun
}

// Declension identifies a nominal paradigm class. DeclIrregular marks
// entries whose forms come entirely from their override map.
type Declension uint8

const (
	DeclUnknown Declension = iota
	DeclFirst
	DeclSecond
	DeclThird
	DeclFourth
	DeclFifth
	DeclIrregular
)

// ParseDeclension parses a persisted declension code: "1" to "5", ordinal
// spellings such as "3rd", or "irregular".
func ParseDeclension(s string) (Declension, error) {
	switch normalizeCode(s) {
	case "1", "1st", "first":
		return DeclFirst, nil
	case "2", "2nd", "second":
		return DeclSecond, nil
	case "3", "3rd", "third":
		return DeclThird, nil
	case "4", "4th", "fourth":
		return DeclFourth, nil
	case "5", "5th", "fifth":
		return DeclFifth, nil
	case "irregular", "irr", "irreg":
		return DeclIrregular, nil
	}
	return DeclUnknown, fmt.Errorf("declension %q: %w", s, ErrUnknownParadigm)
}

func (d Declension) String() string {
	switch d {
	case DeclFirst:
		return "1"
	case DeclSecond:
		return "2"
	case DeclThird:
		return "3"
	case DeclFourth:
		return "4"
	case DeclFifth:
		return "5"
	case DeclIrregular:
		return "irregular"
	}
	return "unknown"
}

// Conjugation identifies a verbal paradigm class. ConjThirdIO is the
// capio type; ConjIrregular verbs take every form from overrides.
type Conjugation uint8

const (
	ConjUnknown Conjugation = iota
	ConjFirst
	ConjSecond
	ConjThird
	ConjThirdIO
	ConjFourth
	ConjIrregular
)

// ParseConjugation parses a persisted conjugation code: "1" to "4", "3io"
// (also "3-io", "3i", "mixed"), or "irregular".
func ParseConjugation(s string) (Conjugation, error) {
	switch normalizeCode(s) {
	case "1", "1st", "first":
		return ConjFirst, nil
	case "2", "2nd", "second":
		return ConjSecond, nil
	case "3", "3rd", "third":
		return ConjThird, nil
	case "3io", "3-io", "3i", "3rd-io", "mixed":
		return ConjThirdIO, nil
	case "4", "4th", "fourth":
		return ConjFourth, nil
	case "irregular", "irr", "irreg":
		return ConjIrregular, nil
	}
	return ConjUnknown, fmt.Errorf("conjugation %q: %w", s, ErrUnknownParadigm)
}

func (c Conjugation) String() string {
	switch c {
	case ConjFirst:
		return "1"
	case ConjSecond:
		return "2"
	case ConjThird:
		return "3"
	case ConjThirdIO:
		return "3io"
	case ConjFourth:
		return "4"
	case ConjIrregular:
		return "irregular"
	}
	return "unknown"
}

func normalizeCode(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimSuffix(s, ".")
}
