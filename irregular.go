package paradigm

// irregularVerb is a built-in override set for a verb whose paradigm the
// conjugation tables cannot produce. base is ConjIrregular when every form
// is listed, or the regular conjugation the unlisted slots follow.
type irregularVerb struct {
	parts       string
	base        Conjugation
	forms       VerbalOverrides
	participles Participles
}

// irregularSpec lists an irregular verb compactly; build expands it.
type irregularSpec struct {
	infinitive    string
	present       personalEndings
	imperfect     personalEndings
	future        personalEndings
	subjunctive   personalEndings
	imperfectSubj personalEndings
	perfectStem   string
	imperative    [2]string
}

func (s irregularSpec) build() VerbalOverrides {
	out := make(VerbalOverrides)
	rows := []struct {
		tense Tense
		mood  Mood
		forms personalEndings
	}{
		{Present, Indicative, s.present},
		{Imperfect, Indicative, s.imperfect},
		{Future, Indicative, s.future},
		{Present, Subjunctive, s.subjunctive},
		{Imperfect, Subjunctive, s.imperfectSubj},
	}
	for _, r := range rows {
		setRow(out, r.tense, r.mood, Active, r.forms)
	}
	if s.perfectStem != "" {
		for _, row := range completedSystem {
			setRow(out, row.tense, row.mood, Active, withStem(s.perfectStem, row.endings))
		}
		out[InfinitiveKey(Perfect, Active)] = s.perfectStem + "isse"
	}
	if s.imperative[0] != "" {
		out[ImperativeKey(Active, Singular)] = s.imperative[0]
		out[ImperativeKey(Active, Plural)] = s.imperative[1]
	}
	out[InfinitiveKey(Present, Active)] = s.infinitive
	return out
}

func setRow(out VerbalOverrides, t Tense, m Mood, v Voice, forms personalEndings) {
	for i, f := range forms {
		if f == "" {
			continue
		}
		p, n := slot(i)
		out[FiniteKey(t, m, v, p, n)] = f
	}
}

func withStem(stem string, endings personalEndings) personalEndings {
	var out personalEndings
	for i, e := range endings {
		out[i] = stem + e
	}
	return out
}

var (
	copulaFuture = personalEndings{"ero", "eris", "erit", "erimus", "eritis", "erunt"}
	thirdFuture  = personalEndings{"am", "es", "et", "emus", "etis", "ent"}
)

var irregularVerbs = map[string]irregularVerb{
	"sum": {
		parts: "sum, esse, fui, futurus",
		base:  ConjIrregular,
		forms: irregularSpec{
			infinitive:    "esse",
			present:       personalEndings{"sum", "es", "est", "sumus", "estis", "sunt"},
			imperfect:     withStem("era", activeEndings),
			future:        copulaFuture,
			subjunctive:   withStem("si", activeEndings),
			imperfectSubj: withStem("esse", activeEndings),
			perfectStem:   "fu",
			imperative:    [2]string{"es", "este"},
		}.build(),
		participles: Participles{FutureActive: "futurus"},
	},
	"possum": {
		parts: "possum, posse, potui",
		base:  ConjIrregular,
		forms: irregularSpec{
			infinitive:    "posse",
			present:       personalEndings{"possum", "potes", "potest", "possumus", "potestis", "possunt"},
			imperfect:     withStem("potera", activeEndings),
			future:        withStem("pot", copulaFuture),
			subjunctive:   withStem("possi", activeEndings),
			imperfectSubj: withStem("posse", activeEndings),
			perfectStem:   "potu",
		}.build(),
		participles: Participles{PresentActive: "potens"},
	},
	"eo": {
		parts: "eo, ire, ii, itum",
		base:  ConjIrregular,
		forms: irregularSpec{
			infinitive:    "ire",
			present:       personalEndings{"eo", "is", "it", "imus", "itis", "eunt"},
			imperfect:     withStem("iba", activeEndings),
			future:        personalEndings{"ibo", "ibis", "ibit", "ibimus", "ibitis", "ibunt"},
			subjunctive:   withStem("ea", activeEndings),
			imperfectSubj: withStem("ire", activeEndings),
			perfectStem:   "i",
			imperative:    [2]string{"i", "ite"},
		}.build(),
		participles: Participles{PresentActive: "iens", FutureActive: "iturus", Gerundive: "eundus"},
	},
	"volo": {
		parts: "volo, velle, volui",
		base:  ConjIrregular,
		forms: irregularSpec{
			infinitive:    "velle",
			present:       personalEndings{"volo", "vis", "vult", "volumus", "vultis", "volunt"},
			imperfect:     withStem("voleba", activeEndings),
			future:        withStem("vol", thirdFuture),
			subjunctive:   withStem("veli", activeEndings),
			imperfectSubj: withStem("velle", activeEndings),
			perfectStem:   "volu",
		}.build(),
		participles: Participles{PresentActive: "volens"},
	},
	"nolo": {
		parts: "nolo, nolle, nolui",
		base:  ConjIrregular,
		forms: irregularSpec{
			infinitive:    "nolle",
			present:       personalEndings{"nolo", "non vis", "non vult", "nolumus", "non vultis", "nolunt"},
			imperfect:     withStem("noleba", activeEndings),
			future:        withStem("nol", thirdFuture),
			subjunctive:   withStem("noli", activeEndings),
			imperfectSubj: withStem("nolle", activeEndings),
			perfectStem:   "nolu",
			imperative:    [2]string{"noli", "nolite"},
		}.build(),
		participles: Participles{PresentActive: "nolens"},
	},
	"malo": {
		parts: "malo, malle, malui",
		base:  ConjIrregular,
		forms: irregularSpec{
			infinitive:    "malle",
			present:       personalEndings{"malo", "mavis", "mavult", "malumus", "mavultis", "malunt"},
			imperfect:     withStem("maleba", activeEndings),
			future:        withStem("mal", thirdFuture),
			subjunctive:   withStem("mali", activeEndings),
			imperfectSubj: withStem("malle", activeEndings),
			perfectStem:   "malu",
		}.build(),
	},
	"fero": {
		parts: "fero, ferre, tuli, latum",
		base:  ConjThird,
		forms: feroForms(),
	},
}

// feroForms lists only the slots where fero departs from the third
// conjugation; everything else is generated.
func feroForms() VerbalOverrides {
	out := VerbalOverrides{
		FiniteKey(Present, Indicative, Active, 2, Singular):  "fers",
		FiniteKey(Present, Indicative, Active, 3, Singular):  "fert",
		FiniteKey(Present, Indicative, Active, 2, Plural):    "fertis",
		FiniteKey(Present, Indicative, Passive, 2, Singular): "ferris",
		FiniteKey(Present, Indicative, Passive, 3, Singular): "fertur",
		ImperativeKey(Active, Singular):                      "fer",
		ImperativeKey(Active, Plural):                        "ferte",
		ImperativeKey(Passive, Singular):                     "ferre",
		InfinitiveKey(Present, Active):                       "ferre",
		InfinitiveKey(Present, Passive):                      "ferri",
	}
	setRow(out, Imperfect, Subjunctive, Active, withStem("ferre", activeEndings))
	setRow(out, Imperfect, Subjunctive, Passive, withStem("ferre", passiveEndings))
	return out
}

// lookupIrregular finds the built-in overrides for lemma. They apply only
// when the entry is marked irregular or uses the verb's base conjugation,
// so volo, volare (to fly) is not mistaken for volo, velle.
func lookupIrregular(lemma string, c Conjugation) (irregularVerb, bool) {
	iv, ok := irregularVerbs[Normalize(firstField(lemma))]
	if !ok {
		return irregularVerb{}, false
	}
	if c != ConjIrregular && c != iv.base {
		return irregularVerb{}, false
	}
	return iv, true
}
