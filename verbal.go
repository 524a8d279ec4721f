package paradigm

// VerbalForms is a generated verb paradigm.
type VerbalForms map[VerbalKey]string

// Strings returns the paradigm keyed by serialized form keys.
func (f VerbalForms) Strings() map[string]string {
	out := make(map[string]string, len(f))
	for k, v := range f {
		out[k.String()] = v
	}
	return out
}

// personalEndings holds one form or ending per person and number, in the
// order 1sg, 2sg, 3sg, 1pl, 2pl, 3pl.
type personalEndings [6]string

func slot(i int) (Person, Number) {
	return Person(i%3 + 1), Number(i / 3)
}

var (
	activeEndings  = personalEndings{"m", "s", "t", "mus", "tis", "nt"}
	passiveEndings = personalEndings{"r", "ris", "tur", "mur", "mini", "ntur"}
)

// conjugationTable holds everything in the incomplete system that differs
// between conjugations. The imperfect indicative is vowel + "ba" + personal
// ending, and the imperfect subjunctive is the active infinitive +
// personal ending, so neither needs a table of its own.
type conjugationTable struct {
	present, presentPassive         personalEndings
	imperfectVowel                  string
	future, futurePassive           personalEndings
	subjunctive, subjunctivePassive personalEndings
	infinitive, infinitivePassive   string
	imperative, imperativePassive   [2]string

	presentParticiple string
	gerundive         string
	// futureParticiple is used only when the verb has no supine stem.
	futureParticiple string
}

var conjugationTables = map[Conjugation]conjugationTable{
	ConjFirst: {
		present:            personalEndings{"o", "as", "at", "amus", "atis", "ant"},
		presentPassive:     personalEndings{"or", "aris", "atur", "amur", "amini", "antur"},
		imperfectVowel:     "a",
		future:             personalEndings{"abo", "abis", "abit", "abimus", "abitis", "abunt"},
		futurePassive:      personalEndings{"abor", "aberis", "abitur", "abimur", "abimini", "abuntur"},
		subjunctive:        personalEndings{"em", "es", "et", "emus", "etis", "ent"},
		subjunctivePassive: personalEndings{"er", "eris", "etur", "emur", "emini", "entur"},
		infinitive:         "are",
		infinitivePassive:  "ari",
		imperative:         [2]string{"a", "ate"},
		imperativePassive:  [2]string{"are", "amini"},
		presentParticiple:  "ans",
		gerundive:          "andus",
		futureParticiple:   "aturus",
	},
	ConjSecond: {
		present:            personalEndings{"eo", "es", "et", "emus", "etis", "ent"},
		presentPassive:     personalEndings{"eor", "eris", "etur", "emur", "emini", "entur"},
		imperfectVowel:     "e",
		future:             personalEndings{"ebo", "ebis", "ebit", "ebimus", "ebitis", "ebunt"},
		futurePassive:      personalEndings{"ebor", "eberis", "ebitur", "ebimur", "ebimini", "ebuntur"},
		subjunctive:        personalEndings{"eam", "eas", "eat", "eamus", "eatis", "eant"},
		subjunctivePassive: personalEndings{"ear", "earis", "eatur", "eamur", "eamini", "eantur"},
		infinitive:         "ere",
		infinitivePassive:  "eri",
		imperative:         [2]string{"e", "ete"},
		imperativePassive:  [2]string{"ere", "emini"},
		presentParticiple:  "ens",
		gerundive:          "endus",
		futureParticiple:   "iturus",
	},
	ConjThird: {
		present:            personalEndings{"o", "is", "it", "imus", "itis", "unt"},
		presentPassive:     personalEndings{"or", "eris", "itur", "imur", "imini", "untur"},
		imperfectVowel:     "e",
		future:             personalEndings{"am", "es", "et", "emus", "etis", "ent"},
		futurePassive:      personalEndings{"ar", "eris", "etur", "emur", "emini", "entur"},
		subjunctive:        personalEndings{"am", "as", "at", "amus", "atis", "ant"},
		subjunctivePassive: personalEndings{"ar", "aris", "atur", "amur", "amini", "antur"},
		infinitive:         "ere",
		infinitivePassive:  "i",
		imperative:         [2]string{"e", "ite"},
		imperativePassive:  [2]string{"ere", "imini"},
		presentParticiple:  "ens",
		gerundive:          "endus",
		futureParticiple:   "iturus",
	},
	ConjThirdIO: {
		present:            personalEndings{"io", "is", "it", "imus", "itis", "iunt"},
		presentPassive:     personalEndings{"ior", "eris", "itur", "imur", "imini", "iuntur"},
		imperfectVowel:     "ie",
		future:             personalEndings{"iam", "ies", "iet", "iemus", "ietis", "ient"},
		futurePassive:      personalEndings{"iar", "ieris", "ietur", "iemur", "iemini", "ientur"},
		subjunctive:        personalEndings{"iam", "ias", "iat", "iamus", "iatis", "iant"},
		subjunctivePassive: personalEndings{"iar", "iaris", "iatur", "iamur", "iamini", "iantur"},
		infinitive:         "ere",
		infinitivePassive:  "i",
		imperative:         [2]string{"e", "ite"},
		imperativePassive:  [2]string{"ere", "imini"},
		presentParticiple:  "iens",
		gerundive:          "iendus",
		futureParticiple:   "iturus",
	},
	ConjFourth: {
		present:            personalEndings{"io", "is", "it", "imus", "itis", "iunt"},
		presentPassive:     personalEndings{"ior", "iris", "itur", "imur", "imini", "iuntur"},
		imperfectVowel:     "ie",
		future:             personalEndings{"iam", "ies", "iet", "iemus", "ietis", "ient"},
		futurePassive:      personalEndings{"iar", "ieris", "ietur", "iemur", "iemini", "ientur"},
		subjunctive:        personalEndings{"iam", "ias", "iat", "iamus", "iatis", "iant"},
		subjunctivePassive: personalEndings{"iar", "iaris", "iatur", "iamur", "iamini", "iantur"},
		infinitive:         "ire",
		infinitivePassive:  "iri",
		imperative:         [2]string{"i", "ite"},
		imperativePassive:  [2]string{"ire", "imini"},
		presentParticiple:  "iens",
		gerundive:          "iendus",
		futureParticiple:   "iturus",
	},
}

// completedSystem lists the perfect-system endings. They attach to the
// perfect stem the same way in every conjugation.
var completedSystem = []struct {
	tense   Tense
	mood    Mood
	endings personalEndings
}{
	{Perfect, Indicative, personalEndings{"i", "isti", "it", "imus", "istis", "erunt"}},
	{Pluperfect, Indicative, personalEndings{"eram", "eras", "erat", "eramus", "eratis", "erant"}},
	{FuturePerfect, Indicative, personalEndings{"ero", "eris", "erit", "erimus", "eritis", "erint"}},
	{Perfect, Subjunctive, personalEndings{"erim", "eris", "erit", "erimus", "eritis", "erint"}},
	{Pluperfect, Subjunctive, personalEndings{"issem", "isses", "isset", "issemus", "issetis", "issent"}},
}

// copulaTenses maps each perfect-system tense and mood to the tense and
// mood of the copula in its periphrastic passive: amatus est, amatus erat,
// amatus erit, amatus sit, amatus esset.
var copulaTenses = map[Tense]Tense{
	Perfect:       Present,
	Pluperfect:    Imperfect,
	FuturePerfect: Future,
}

// copulaLemma is the entry whose forms build the periphrastic passive.
const copulaLemma = "sum"

// ConjugateVerb generates the finite forms, imperatives and infinitives of
// a verb from its principal parts ("amo, amare, amavi, amatum"), then lays
// overrides over them. Irregular verbs take every form from overrides
// (built-in ones for sum, possum, eo, volo, nolo and malo, caller-supplied
// ones for the rest).
//
// Deponents, recognized by a first principal part in -or, produce only
// passive-shaped keys. Semi-deponents (audeo, audere, ausus sum) are
// active in the present system and passive-shaped in the perfect system.
// Without a fourth principal part the perfect passive is left out.
func ConjugateVerb(lemma string, c Conjugation, principalParts string, overrides VerbalOverrides) VerbalForms {
	pp := ParsePrincipalParts(principalParts)
	if iv, ok := lookupIrregular(lemma, c); ok {
		overrides = merge(iv.forms, overrides)
		if pp.Present == "" {
			pp = ParsePrincipalParts(iv.parts)
		}
		c = iv.base
	}

	forms := make(VerbalForms)
	if c == ConjIrregular || c == ConjUnknown {
		return resolve(forms, overrides)
	}
	c = promoteThirdIO(c, pp)
	t, ok := conjugationTables[c]
	if !ok {
		return resolve(forms, overrides)
	}
	st, ok := ExtractVerbStems(c, pp)
	if !ok {
		return resolve(forms, overrides)
	}

	deponent, semi := pp.Deponent(), pp.SemiDeponent()
	if !deponent {
		incompleteSystem(forms, t, st.Present, Active)
	}
	if !semi {
		incompleteSystem(forms, t, st.Present, Passive)
	}
	if !deponent && !semi && st.Perfect != "" {
		for _, row := range completedSystem {
			for i, e := range row.endings {
				p, n := slot(i)
				forms[FiniteKey(row.tense, row.mood, Active, p, n)] = st.Perfect + e
			}
		}
		forms[InfinitiveKey(Perfect, Active)] = st.Perfect + "isse"
	}
	if st.Supine != "" {
		periphrasticPassive(forms, st.Supine)
	}
	return resolve(forms, overrides)
}

// promoteThirdIO treats a third-conjugation verb whose first principal
// part ends in -io (or -ior) as the capio type.
func promoteThirdIO(c Conjugation, pp PrincipalParts) Conjugation {
	if c == ConjThird && (hasSuffix(pp.Present, "io") || hasSuffix(pp.Present, "ior")) {
		return ConjThirdIO
	}
	return c
}

func incompleteSystem(forms VerbalForms, t conjugationTable, stem string, v Voice) {
	present, future, subjunctive := t.present, t.future, t.subjunctive
	personal := activeEndings
	imperative := t.imperative
	infinitive := t.infinitive
	if v == Passive {
		present, future, subjunctive = t.presentPassive, t.futurePassive, t.subjunctivePassive
		personal = passiveEndings
		imperative = t.imperativePassive
		infinitive = t.infinitivePassive
	}
	for i := range personal {
		p, n := slot(i)
		forms[FiniteKey(Present, Indicative, v, p, n)] = stem + present[i]
		forms[FiniteKey(Imperfect, Indicative, v, p, n)] = stem + t.imperfectVowel + "ba" + personal[i]
		forms[FiniteKey(Future, Indicative, v, p, n)] = stem + future[i]
		forms[FiniteKey(Present, Subjunctive, v, p, n)] = stem + subjunctive[i]
		forms[FiniteKey(Imperfect, Subjunctive, v, p, n)] = stem + t.infinitive + personal[i]
	}
	forms[ImperativeKey(v, Singular)] = stem + imperative[0]
	forms[ImperativeKey(v, Plural)] = stem + imperative[1]
	forms[InfinitiveKey(Present, v)] = stem + infinitive
}

// periphrasticPassive builds the perfect-system passive from the perfect
// participle, agreeing in number, and the copula's own paradigm.
func periphrasticPassive(forms VerbalForms, supine string) {
	copula := ConjugateVerb(copulaLemma, ConjIrregular, "", nil)
	participle := [2]string{supine + "us", supine + "i"}
	for _, row := range completedSystem {
		for i := range row.endings {
			p, n := slot(i)
			aux, ok := copula[FiniteKey(copulaTenses[row.tense], row.mood, Active, p, n)]
			if !ok {
				continue
			}
			forms[FiniteKey(row.tense, row.mood, Passive, p, n)] = participle[n] + " " + aux
		}
	}
	if esse, ok := copula[InfinitiveKey(Present, Active)]; ok {
		forms[InfinitiveKey(Perfect, Passive)] = participle[Singular] + " " + esse
	}
}
