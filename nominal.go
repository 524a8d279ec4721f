package paradigm

// NominalForms is a generated noun, adjective or pronoun paradigm.
type NominalForms map[NominalKey]string

// Strings returns the paradigm keyed by serialized form keys.
func (f NominalForms) Strings() map[string]string {
	out := make(map[string]string, len(f))
	for k, v := range f {
		out[k.String()] = v
	}
	return out
}

// fromLemma marks a cell that repeats the citation form instead of adding
// a suffix to the stem.
const fromLemma = "*"

// endingTable holds the twelve endings of one nominal pattern, indexed by
// number and then by case in the order of cases.
type endingTable [2][6]string

var (
	firstDeclension = endingTable{
		{fromLemma, fromLemma, "ae", "ae", "am", "a"},
		{"ae", "ae", "arum", "is", "as", "is"},
	}
	secondMasculine = endingTable{
		{fromLemma, "e", "i", "o", "um", "o"},
		{"i", "i", "orum", "is", "os", "is"},
	}
	secondNeuter = endingTable{
		{fromLemma, fromLemma, "i", "o", fromLemma, "o"},
		{"a", "a", "orum", "is", "a", "is"},
	}
	thirdCommon = endingTable{
		{fromLemma, fromLemma, "is", "i", "em", "e"},
		{"es", "es", "um", "ibus", "es", "ibus"},
	}
	thirdNeuter = endingTable{
		{fromLemma, fromLemma, "is", "i", fromLemma, "e"},
		{"a", "a", "um", "ibus", "a", "ibus"},
	}
	fourthCommon = endingTable{
		{fromLemma, fromLemma, "us", "ui", "um", "u"},
		{"us", "us", "uum", "ibus", "us", "ibus"},
	}
	fourthNeuter = endingTable{
		{fromLemma, fromLemma, "us", "u", fromLemma, "u"},
		{"ua", "ua", "uum", "ibus", "ua", "ibus"},
	}
	fifthDeclension = endingTable{
		{fromLemma, fromLemma, "ei", "ei", "em", "e"},
		{"es", "es", "erum", "ebus", "es", "ebus"},
	}

	// Third-declension adjectives are i-stems throughout.
	thirdAdjectiveCommon = endingTable{
		{fromLemma, fromLemma, "is", "i", "em", "i"},
		{"es", "es", "ium", "ibus", "es", "ibus"},
	}
	thirdAdjectiveNeuter = endingTable{
		{fromLemma, fromLemma, "is", "i", fromLemma, "i"},
		{"ia", "ia", "ium", "ibus", "ia", "ibus"},
	}
)

const genitivePluralIndex = 2

// nounTable selects the ending table for a noun. It reports false for a
// declension with no rule-based table.
func nounTable(d Declension, g Gender, parisyllabic bool) (endingTable, bool) {
	switch d {
	case DeclFirst:
		return firstDeclension, true
	case DeclSecond:
		if g == Neuter {
			return secondNeuter, true
		}
		return secondMasculine, true
	case DeclThird:
		t := thirdCommon
		if g == Neuter {
			t = thirdNeuter
		}
		if parisyllabic {
			t[Plural][genitivePluralIndex] = "ium"
		}
		return t, true
	case DeclFourth:
		if g == Neuter {
			return fourthNeuter, true
		}
		return fourthCommon, true
	case DeclFifth:
		return fifthDeclension, true
	}
	return endingTable{}, false
}

func (t endingTable) apply(lemma, stem string) NominalForms {
	forms := make(NominalForms, 12)
	for ni, n := range numbers {
		for ci, c := range cases {
			suf := t[ni][ci]
			if suf == fromLemma {
				forms[Key(c, n)] = lemma
				continue
			}
			forms[Key(c, n)] = stem + suf
		}
	}
	return forms
}

// secondVocative handles the vocative singular of masculine second
// declension words: filius gives fili, bonus gives bone, puer stays puer.
func secondVocative(lemma, stem string) string {
	switch {
	case hasSuffix(lemma, "ius"):
		return stem
	case hasSuffix(lemma, "us"):
		return stem + "e"
	}
	return lemma
}

// DeclineNoun generates the twelve case and number forms of a noun, then
// lays overrides over them. A missing or mismatched genitive, or a
// declension without rules, yields only what the overrides supply: callers
// should treat an empty result as "cannot generate".
func DeclineNoun(lemma string, d Declension, g Gender, genitive string, overrides NominalOverrides, parisyllabic bool) NominalForms {
	forms := make(NominalForms)
	if t, ok := nounTable(d, g, parisyllabic); ok {
		if stem, ok := NominalStem(d, genitive); ok {
			forms = t.apply(lemma, stem)
			if d == DeclSecond && g != Neuter {
				forms[Key(Vocative, Singular)] = secondVocative(lemma, stem)
			}
		}
	}
	return resolve(forms, overrides)
}

// DeclineInvariable fills every slot with the lemma, for indeclinable
// nouns such as fas or nihil.
func DeclineInvariable(lemma string, overrides NominalOverrides) NominalForms {
	forms := make(NominalForms, 12)
	for _, n := range numbers {
		for _, c := range cases {
			forms[Key(c, n)] = lemma
		}
	}
	return resolve(forms, overrides)
}

// DeclineAdjective generates one paradigm per gender. Declension 1 or 2
// selects the bonus, bona, bonum pattern (genitive "boni"); declension 3
// selects the i-stem pattern, with the nominatives of one-, two- and
// three-termination adjectives derived from lemma and genitive. Override
// keys without a gender apply to all three paradigms, gendered keys to
// theirs only.
func DeclineAdjective(lemma string, d Declension, genitive string, overrides NominalOverrides) map[Gender]NominalForms {
	out := make(map[Gender]NominalForms, len(genders))
	var generated map[Gender]NominalForms
	switch d {
	case DeclFirst, DeclSecond:
		generated = declineFirstSecondAdjective(lemma, genitive)
	case DeclThird:
		generated = declineThirdAdjective(lemma, genitive)
	}
	for _, g := range genders {
		forms := generated[g]
		if forms == nil {
			forms = make(NominalForms)
		}
		out[g] = resolve(forms, overridesFor(overrides, g))
	}
	return out
}

func declineFirstSecondAdjective(lemma, genitive string) map[Gender]NominalForms {
	stem, ok := NominalStem(DeclSecond, genitive)
	if !ok {
		if stem, ok = NominalStem(DeclFirst, genitive); !ok {
			return nil
		}
	}
	masc := secondMasculine.apply(lemma, stem)
	masc[Key(Vocative, Singular)] = secondVocative(lemma, stem)
	return map[Gender]NominalForms{
		Masculine: masc,
		Feminine:  firstDeclension.apply(stem+"a", stem),
		Neuter:    secondNeuter.apply(stem+"um", stem),
	}
}

func declineThirdAdjective(lemma, genitive string) map[Gender]NominalForms {
	stem, ok := NominalStem(DeclThird, genitive)
	if !ok {
		return nil
	}
	masc, fem, neut := lemma, lemma, lemma
	switch {
	case Normalize(lemma) == Normalize(firstField(genitive)):
		neut = stem + "e"
	case hasSuffix(lemma, "er"):
		fem, neut = stem+"is", stem+"e"
	}
	return map[Gender]NominalForms{
		Masculine: thirdAdjectiveCommon.apply(masc, stem),
		Feminine:  thirdAdjectiveCommon.apply(fem, stem),
		Neuter:    thirdAdjectiveNeuter.apply(neut, stem),
	}
}

// overridesFor picks the overrides that apply to gender g, with the gender
// stripped from their keys. Gendered keys win over ungendered ones.
func overridesFor(overrides NominalOverrides, g Gender) NominalOverrides {
	out := make(NominalOverrides)
	for k, v := range overrides {
		if k.Gender == GenderNone {
			if _, set := out[k]; !set {
				out[k] = v
			}
			continue
		}
		if k.Gender == g {
			out[k.WithGender(GenderNone)] = v
		}
	}
	return out
}
