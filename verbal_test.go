package paradigm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const amoParts = "amo, amare, amavi, amatum"

func TestConjugateVerbFirst(t *testing.T) {
	got := ConjugateVerb("amo", ConjFirst, amoParts, nil).Strings()
	// 33 per voice in the present system, 31 per voice in the perfect
	// system (including the perfect infinitive).
	assert.Len(t, got, 128)

	tests := map[string]string{
		"pres_1sg":              "amo",
		"pres_3pl":              "amant",
		"imp_1sg":               "amabam",
		"fut_1sg":               "amabo",
		"pres_subj_1sg":         "amem",
		"imp_subj_3sg":          "amaret",
		"pres_pass_2sg":         "amaris",
		"fut_pass_3pl":          "amabuntur",
		"perf_1sg":              "amavi",
		"perf_3pl":              "amaverunt",
		"pluperf_1sg":           "amaveram",
		"futperf_3pl":           "amaverint",
		"perf_subj_1sg":         "amaverim",
		"pluperf_subj_3sg":      "amavisset",
		"perf_pass_3sg":         "amatus est",
		"perf_pass_3pl":         "amati sunt",
		"pluperf_pass_1sg":      "amatus eram",
		"futperf_pass_3pl":      "amati erunt",
		"perf_subj_pass_3pl":    "amati sint",
		"pluperf_subj_pass_1sg": "amatus essem",
		"imv_2sg":               "ama",
		"imv_2pl":               "amate",
		"imv_pass_2pl":          "amamini",
		"inf_pres":              "amare",
		"inf_pres_pass":         "amari",
		"inf_perf":              "amavisse",
		"inf_perf_pass":         "amatus esse",
	}
	for k, want := range tests {
		assert.Equal(t, want, got[k], k)
	}
}

func TestConjugateVerbNoFutureSubjunctive(t *testing.T) {
	for k := range ConjugateVerb("amo", ConjFirst, amoParts, nil) {
		if k.Form == Finite && k.Mood == Subjunctive {
			assert.NotEqual(t, Future, k.Tense, k.String())
			assert.NotEqual(t, FuturePerfect, k.Tense, k.String())
		}
	}
}

func TestConjugateVerbRegular(t *testing.T) {
	tests := []struct {
		lemma string
		conj  Conjugation
		parts string
		want  map[string]string
	}{
		{"moneo", ConjSecond, "moneo, monere, monui, monitum", map[string]string{
			"pres_3pl": "monent", "imp_1sg": "monebam", "pres_subj_1sg": "moneam", "perf_1sg": "monui", "inf_pres_pass": "moneri",
		}},
		{"rego", ConjThird, "rego, regere, rexi, rectum", map[string]string{
			"pres_3pl": "regunt", "fut_1sg": "regam", "pres_pass_2sg": "regeris", "inf_pres_pass": "regi",
			"imp_subj_1sg": "regerem", "perf_1sg": "rexi", "perf_pass_3sg": "rectus est",
		}},
		{"capio", ConjThird, "capio, capere, cepi, captum", map[string]string{
			"pres_2sg": "capis", "pres_3pl": "capiunt", "imp_1sg": "capiebam", "fut_1sg": "capiam", "inf_pres_pass": "capi",
		}},
		{"audio", ConjFourth, "audio, audire, audivi, auditum", map[string]string{
			"pres_3pl": "audiunt", "pres_pass_2sg": "audiris", "imv_2sg": "audi", "imp_1sg": "audiebam", "inf_pres_pass": "audiri",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.lemma, func(t *testing.T) {
			got := ConjugateVerb(tt.lemma, tt.conj, tt.parts, nil).Strings()
			for k, want := range tt.want {
				assert.Equal(t, want, got[k], k)
			}
		})
	}
}

func TestConjugateVerbWithoutSupine(t *testing.T) {
	got := ConjugateVerb("venio", ConjFourth, "venio, venire, veni, -", nil)
	for k := range got {
		if k.Voice == Passive {
			assert.False(t, k.Tense.Completed(), "unexpected perfect passive %s", k)
		}
	}
	active := 0
	for k := range got {
		if k.Voice == Active && !k.Tense.Completed() {
			active++
		}
	}
	assert.Equal(t, 33, active)
	assert.Equal(t, "veni", got[FiniteKey(Perfect, Indicative, Active, 1, Singular)])
	assert.Equal(t, "venisse", got[InfinitiveKey(Perfect, Active)])
}

func TestConjugateVerbFutureParticipleAsFourthPart(t *testing.T) {
	got := ConjugateVerb("maneo", ConjSecond, "maneo, manere, mansi, mansurus", nil)
	for k := range got {
		if k.Voice == Passive {
			assert.False(t, k.Tense.Completed(), "unexpected perfect passive %s", k)
		}
	}
	assert.Equal(t, "mansit", got[FiniteKey(Perfect, Indicative, Active, 3, Singular)])
	assert.Equal(t, "manet", got[FiniteKey(Present, Indicative, Active, 3, Singular)])
	assert.NotContains(t, got, InfinitiveKey(Perfect, Passive))
}

func TestConjugateVerbDeponent(t *testing.T) {
	miror := ConjugateVerb("miror", ConjFirst, "miror, mirari, miratus sum", nil)
	require.NotEmpty(t, miror)
	for k := range miror {
		assert.Equal(t, Passive, k.Voice, "deponent produced active key %s", k)
	}
	assert.Equal(t, "miratur", miror[FiniteKey(Present, Indicative, Passive, 3, Singular)])
	assert.Equal(t, "miratus est", miror[FiniteKey(Perfect, Indicative, Passive, 3, Singular)])
	assert.Equal(t, "mirari", miror[InfinitiveKey(Present, Passive)])

	sequor := ConjugateVerb("sequor", ConjThird, "sequor, sequi, secutus sum", nil)
	assert.Equal(t, "sequitur", sequor[FiniteKey(Present, Indicative, Passive, 3, Singular)])
	assert.Equal(t, "sequi", sequor[InfinitiveKey(Present, Passive)])
	assert.Equal(t, "secuti sunt", sequor[FiniteKey(Perfect, Indicative, Passive, 3, Plural)])
}

func TestConjugateVerbSemiDeponent(t *testing.T) {
	got := ConjugateVerb("audeo", ConjSecond, "audeo, audere, ausus sum", nil)
	assert.Equal(t, "audet", got[FiniteKey(Present, Indicative, Active, 3, Singular)])
	assert.Equal(t, "ausus est", got[FiniteKey(Perfect, Indicative, Passive, 3, Singular)])
	_, ok := got[FiniteKey(Present, Indicative, Passive, 3, Singular)]
	assert.False(t, ok, "semi-deponent has no present passive")
	_, ok = got[FiniteKey(Perfect, Indicative, Active, 3, Singular)]
	assert.False(t, ok, "semi-deponent has no active perfect")
}

func TestConjugateVerbIrregular(t *testing.T) {
	sum := ConjugateVerb("sum", ConjIrregular, "", nil).Strings()
	for k, want := range map[string]string{
		"pres_3sg": "est", "pres_3pl": "sunt", "fut_3pl": "erunt", "imp_subj_1sg": "essem",
		"perf_1sg": "fui", "inf_pres": "esse", "inf_perf": "fuisse", "imv_2pl": "este",
	} {
		assert.Equal(t, want, sum[k], k)
	}
	for k := range sum {
		assert.NotContains(t, k, "_pass", "sum has no passive")
	}

	possum := ConjugateVerb("possum", ConjIrregular, "", nil).Strings()
	assert.Equal(t, "potes", possum["pres_2sg"])
	assert.Equal(t, "potero", possum["fut_1sg"])
	assert.Equal(t, "potui", possum["perf_1sg"])

	eo := ConjugateVerb("eo", ConjIrregular, "", nil).Strings()
	assert.Equal(t, "eunt", eo["pres_3pl"])
	assert.Equal(t, "ii", eo["perf_1sg"])
	assert.Equal(t, "iisse", eo["inf_perf"])
}

func TestConjugateVerbHomograph(t *testing.T) {
	velle := ConjugateVerb("volo", ConjIrregular, "", nil)
	assert.Equal(t, "vult", velle[FiniteKey(Present, Indicative, Active, 3, Singular)])

	volare := ConjugateVerb("volo", ConjFirst, "volo, volare, volavi, volatum", nil)
	assert.Equal(t, "volat", volare[FiniteKey(Present, Indicative, Active, 3, Singular)])
}

func TestConjugateVerbFero(t *testing.T) {
	for _, c := range []Conjugation{ConjThird, ConjIrregular} {
		got := ConjugateVerb("fero", c, "", nil).Strings()
		for k, want := range map[string]string{
			"pres_1sg": "fero", "pres_2sg": "fers", "pres_3sg": "fert", "pres_3pl": "ferunt",
			"fut_1sg": "feram", "imp_subj_1sg": "ferrem", "perf_1sg": "tuli",
			"perf_pass_3sg": "latus est", "inf_pres": "ferre", "inf_pres_pass": "ferri",
		} {
			assert.Equal(t, want, got[k], "%s (%s)", k, c)
		}
	}
}

func TestConjugateVerbOverridesOnly(t *testing.T) {
	overrides := VerbalOverrides{
		FiniteKey(Perfect, Indicative, Active, 1, Singular): "odi",
		InfinitiveKey(Perfect, Active):                      "odisse",
	}
	got := ConjugateVerb("odi", ConjIrregular, "", overrides)
	assert.Equal(t, VerbalForms(overrides), got)
}

func TestConjugateVerbOverrides(t *testing.T) {
	got := ConjugateVerb("amo", ConjFirst, amoParts, VerbalOverrides{
		FiniteKey(Present, Indicative, Active, 1, Singular): "amō",
		ImperativeKey(Passive, Singular):                    Suppressed,
	})
	assert.Equal(t, "amō", got[FiniteKey(Present, Indicative, Active, 1, Singular)])
	_, ok := got[ImperativeKey(Passive, Singular)]
	assert.False(t, ok)
	assert.Len(t, got, 127)
}

func TestConjugateVerbCannotGenerate(t *testing.T) {
	assert.Empty(t, ConjugateVerb("amo", ConjFirst, "", nil))
	assert.Empty(t, ConjugateVerb("amo", ConjUnknown, amoParts, nil))
	assert.Empty(t, ConjugateVerb("amo", ConjFirst, "amx, amxre", nil))
}
