package paradigm

import (
	"fmt"
	"strings"
)

// Case is a nominal case. Locative is never generated by rule; it only
// appears when an override supplies it.
type Case uint8

const (
	Nominative Case = iota
	Vocative
	Genitive
	Dative
	Accusative
	Ablative
	Locative
)

var caseTokens = [...]string{"nom", "voc", "gen", "dat", "acc", "abl", "loc"}

func (c Case) String() string {
	if int(c) < len(caseTokens) {
		return caseTokens[c]
	}
	return "?"
}

// cases lists the six cases every generated nominal paradigm covers, in
// table order.
var cases = [...]Case{Nominative, Vocative, Genitive, Dative, Accusative, Ablative}

// Number is grammatical number.
type Number uint8

const (
	Singular Number = iota
	Plural
)

func (n Number) String() string {
	if n == Plural {
		return "pl"
	}
	return "sg"
}

var numbers = [...]Number{Singular, Plural}

// Gender is grammatical gender. GenderNone is the zero value and is used in
// keys that carry no gender. Common covers disjunctive "m/f" entries; it is
// accepted on input but never appears in a key.
type Gender uint8

const (
	GenderNone Gender = iota
	Masculine
	Feminine
	Neuter
	Common
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "m"
	case Feminine:
		return "f"
	case Neuter:
		return "n"
	case Common:
		return "m/f"
	}
	return ""
}

// ParseGender accepts "m", "f", "n", their long forms, and the disjunctive
// "m/f" (also "c", "f/m", "m-f").
func ParseGender(s string) (Gender, error) {
	switch normalizeCode(s) {
	case "m", "masc", "masculine":
		return Masculine, nil
	case "f", "fem", "feminine":
		return Feminine, nil
	case "n", "neut", "neuter":
		return Neuter, nil
	case "m/f", "f/m", "m-f", "c", "common":
		return Common, nil
	}
	return GenderNone, fmt.Errorf("gender %q: %w", s, ErrUnknownParadigm)
}

// genders lists the three genders adjectives and demonstratives inflect for.
var genders = [...]Gender{Masculine, Feminine, Neuter}

// NominalKey addresses one cell of a noun, adjective or pronoun paradigm.
// Its string form is "{case}_{number}[_{gender}]", e.g. "gen_pl" or
// "nom_sg_m".
type NominalKey struct {
	Case   Case
	Number Number
	Gender Gender
}

// Key returns the ungendered key for case c and number n.
func Key(c Case, n Number) NominalKey {
	return NominalKey{Case: c, Number: n}
}

func (k NominalKey) String() string {
	s := k.Case.String() + "_" + k.Number.String()
	switch k.Gender {
	case Masculine, Feminine, Neuter:
		s += "_" + k.Gender.String()
	}
	return s
}

// WithGender returns k tagged with gender g.
func (k NominalKey) WithGender(g Gender) NominalKey {
	k.Gender = g
	return k
}

// ParseNominalKey parses the persisted nominal key grammar.
func ParseNominalKey(s string) (NominalKey, error) {
	parts := strings.Split(s, "_")
	if len(parts) < 2 || len(parts) > 3 {
		return NominalKey{}, fmt.Errorf("nominal key %q: %w", s, ErrMalformedOverride)
	}
	var k NominalKey
	c, ok := parseCase(parts[0])
	if !ok {
		return NominalKey{}, fmt.Errorf("nominal key %q: unknown case: %w", s, ErrMalformedOverride)
	}
	k.Case = c
	n, ok := parseNumber(parts[1])
	if !ok {
		return NominalKey{}, fmt.Errorf("nominal key %q: unknown number: %w", s, ErrMalformedOverride)
	}
	k.Number = n
	if len(parts) == 3 {
		switch parts[2] {
		case "m":
			k.Gender = Masculine
		case "f":
			k.Gender = Feminine
		case "n":
			k.Gender = Neuter
		default:
			return NominalKey{}, fmt.Errorf("nominal key %q: unknown gender: %w", s, ErrMalformedOverride)
		}
	}
	return k, nil
}

func parseCase(s string) (Case, bool) {
	for i, tok := range caseTokens {
		if tok == s {
			return Case(i), true
		}
	}
	return 0, false
}

func parseNumber(s string) (Number, bool) {
	switch s {
	case "sg":
		return Singular, true
	case "pl":
		return Plural, true
	}
	return 0, false
}

// VerbForm distinguishes finite forms from the infinitive and imperative
// literals.
type VerbForm uint8

const (
	Finite VerbForm = iota
	Infinitive
	Imperative
)

// Tense covers both the incomplete (present, imperfect, future) and the
// completed (perfect, pluperfect, future perfect) systems.
type Tense uint8

const (
	Present Tense = iota
	Imperfect
	Future
	Perfect
	Pluperfect
	FuturePerfect
)

var tenseTokens = [...]string{"pres", "imp", "fut", "perf", "pluperf", "futperf"}

func (t Tense) String() string {
	if int(t) < len(tenseTokens) {
		return tenseTokens[t]
	}
	return "?"
}

// Completed reports whether t belongs to the perfect system.
func (t Tense) Completed() bool {
	return t >= Perfect
}

// Mood is indicative or subjunctive; imperatives are a VerbForm.
type Mood uint8

const (
	Indicative Mood = iota
	Subjunctive
)

// Voice is active or passive.
type Voice uint8

const (
	Active Voice = iota
	Passive
)

// Person is grammatical person, 1 to 3.
type Person uint8

// VerbalKey addresses one cell of a verb paradigm. Finite keys serialize as
// "{tense}[_subj][_pass]_{person}{number}", e.g. "pres_1sg" or
// "perf_subj_pass_3pl"; the literals are "inf_pres", "inf_pres_pass",
// "inf_perf", "imv_2sg", "imv_2pl", "imv_pass_2sg" and "imv_pass_2pl".
type VerbalKey struct {
	Form   VerbForm
	Tense  Tense
	Mood   Mood
	Voice  Voice
	Person Person
	Number Number
}

// FiniteKey returns the key for a finite form.
func FiniteKey(t Tense, m Mood, v Voice, p Person, n Number) VerbalKey {
	return VerbalKey{Form: Finite, Tense: t, Mood: m, Voice: v, Person: p, Number: n}
}

// InfinitiveKey returns the key for an infinitive.
func InfinitiveKey(t Tense, v Voice) VerbalKey {
	return VerbalKey{Form: Infinitive, Tense: t, Voice: v}
}

// ImperativeKey returns the key for a second-person imperative.
func ImperativeKey(v Voice, n Number) VerbalKey {
	return VerbalKey{Form: Imperative, Voice: v, Person: 2, Number: n}
}

func (k VerbalKey) String() string {
	var b strings.Builder
	switch k.Form {
	case Infinitive:
		b.WriteString("inf_")
		b.WriteString(k.Tense.String())
		if k.Voice == Passive {
			b.WriteString("_pass")
		}
		return b.String()
	case Imperative:
		b.WriteString("imv")
	default:
		b.WriteString(k.Tense.String())
		if k.Mood == Subjunctive {
			b.WriteString("_subj")
		}
	}
	if k.Voice == Passive {
		b.WriteString("_pass")
	}
	fmt.Fprintf(&b, "_%d%s", k.Person, k.Number)
	return b.String()
}

// ParseVerbalKey parses the persisted verbal key grammar.
func ParseVerbalKey(s string) (VerbalKey, error) {
	bad := func(why string) (VerbalKey, error) {
		return VerbalKey{}, fmt.Errorf("verbal key %q: %s: %w", s, why, ErrMalformedOverride)
	}
	parts := strings.Split(s, "_")
	if len(parts) < 2 {
		return bad("too short")
	}

	if parts[0] == "inf" {
		t, ok := parseTense(parts[1])
		if !ok || (t != Present && t != Perfect && t != Future) {
			return bad("unknown infinitive tense")
		}
		k := InfinitiveKey(t, Active)
		switch {
		case len(parts) == 2:
		case len(parts) == 3 && parts[2] == "pass":
			k.Voice = Passive
		default:
			return bad("unexpected suffix")
		}
		return k, nil
	}

	p, n, ok := parsePersonNumber(parts[len(parts)-1])
	if !ok {
		return bad("bad person/number")
	}
	middle := parts[1 : len(parts)-1]

	if parts[0] == "imv" {
		if p != 2 {
			return bad("imperative must be second person")
		}
		k := ImperativeKey(Active, n)
		switch {
		case len(middle) == 0:
		case len(middle) == 1 && middle[0] == "pass":
			k.Voice = Passive
		default:
			return bad("unexpected imperative modifier")
		}
		return k, nil
	}

	t, ok := parseTense(parts[0])
	if !ok {
		return bad("unknown tense")
	}
	k := FiniteKey(t, Indicative, Active, p, n)
	if len(middle) > 0 && middle[0] == "subj" {
		k.Mood = Subjunctive
		middle = middle[1:]
	}
	if len(middle) > 0 && middle[0] == "pass" {
		k.Voice = Passive
		middle = middle[1:]
	}
	if len(middle) > 0 {
		return bad("unexpected modifier " + middle[0])
	}
	return k, nil
}

func parseTense(s string) (Tense, bool) {
	for i, tok := range tenseTokens {
		if tok == s {
			return Tense(i), true
		}
	}
	return 0, false
}

func parsePersonNumber(s string) (Person, Number, bool) {
	if len(s) != 3 || s[0] < '1' || s[0] > '3' {
		return 0, 0, false
	}
	n, ok := parseNumber(s[1:])
	return Person(s[0] - '0'), n, ok
}

// ParticipleKind names one of the four participles.
type ParticipleKind string

const (
	PresentActive  ParticipleKind = "pres_act"
	PerfectPassive ParticipleKind = "perf_pass"
	FutureActive   ParticipleKind = "fut_act"
	Gerundive      ParticipleKind = "gerundive"
)
