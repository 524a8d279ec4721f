package paradigm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclineNounFirst(t *testing.T) {
	got := DeclineNoun("rosa", DeclFirst, Feminine, "rosae", nil, false).Strings()
	want := map[string]string{
		"nom_sg": "rosa", "voc_sg": "rosa", "gen_sg": "rosae",
		"dat_sg": "rosae", "acc_sg": "rosam", "abl_sg": "rosa",
		"nom_pl": "rosae", "voc_pl": "rosae", "gen_pl": "rosarum",
		"dat_pl": "rosis", "acc_pl": "rosas", "abl_pl": "rosis",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rosa mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclineNoun(t *testing.T) {
	tests := []struct {
		name         string
		lemma        string
		decl         Declension
		gender       Gender
		genitive     string
		parisyllabic bool
		want         map[string]string
	}{
		{
			name: "second masculine", lemma: "lupus", decl: DeclSecond, gender: Masculine, genitive: "lupi",
			want: map[string]string{"nom_sg": "lupus", "voc_sg": "lupe", "gen_sg": "lupi", "acc_sg": "lupum", "gen_pl": "luporum", "acc_pl": "lupos"},
		},
		{
			name: "second in -ius", lemma: "filius", decl: DeclSecond, gender: Masculine, genitive: "filii",
			want: map[string]string{"voc_sg": "fili", "gen_sg": "filii", "dat_pl": "filiis"},
		},
		{
			name: "second in -er", lemma: "puer", decl: DeclSecond, gender: Masculine, genitive: "pueri",
			want: map[string]string{"nom_sg": "puer", "voc_sg": "puer", "acc_sg": "puerum", "nom_pl": "pueri"},
		},
		{
			name: "second neuter", lemma: "bellum", decl: DeclSecond, gender: Neuter, genitive: "belli",
			want: map[string]string{"nom_sg": "bellum", "voc_sg": "bellum", "acc_sg": "bellum", "gen_sg": "belli", "nom_pl": "bella", "acc_pl": "bella"},
		},
		{
			name: "third neuter", lemma: "nomen", decl: DeclThird, gender: Neuter, genitive: "nominis",
			want: map[string]string{"acc_sg": "nomen", "abl_sg": "nomine", "nom_pl": "nomina", "gen_pl": "nominum", "dat_pl": "nominibus"},
		},
		{
			name: "third keeps macrons in stem", lemma: "rēx", decl: DeclThird, gender: Masculine, genitive: "rēgis",
			want: map[string]string{"nom_sg": "rēx", "acc_sg": "rēgem", "gen_pl": "rēgum"},
		},
		{
			name: "third parisyllabic", lemma: "civis", decl: DeclThird, gender: Common, genitive: "civis", parisyllabic: true,
			want: map[string]string{"gen_pl": "civium", "acc_sg": "civem"},
		},
		{
			name: "third imparisyllabic", lemma: "civis", decl: DeclThird, gender: Common, genitive: "civis",
			want: map[string]string{"gen_pl": "civum"},
		},
		{
			name: "fourth", lemma: "manus", decl: DeclFourth, gender: Feminine, genitive: "manus",
			want: map[string]string{"dat_sg": "manui", "gen_pl": "manuum", "abl_pl": "manibus"},
		},
		{
			name: "fourth neuter", lemma: "cornu", decl: DeclFourth, gender: Neuter, genitive: "cornus",
			want: map[string]string{"nom_sg": "cornu", "dat_sg": "cornu", "nom_pl": "cornua", "gen_pl": "cornuum"},
		},
		{
			name: "fifth", lemma: "res", decl: DeclFifth, gender: Feminine, genitive: "rei",
			want: map[string]string{"dat_sg": "rei", "acc_sg": "rem", "gen_pl": "rerum", "dat_pl": "rebus"},
		},
		{
			name: "citation genitive", lemma: "puer", decl: DeclSecond, gender: Masculine, genitive: "pueri, -orum",
			want: map[string]string{"gen_sg": "pueri"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeclineNoun(tt.lemma, tt.decl, tt.gender, tt.genitive, nil, tt.parisyllabic).Strings()
			assert.Len(t, got, 12)
			for k, want := range tt.want {
				assert.Equal(t, want, got[k], k)
			}
		})
	}
}

func TestDeclineNounOverrides(t *testing.T) {
	overrides := NominalOverrides{
		Key(Ablative, Singular): "domo",
		Key(Locative, Singular): "domi",
	}
	got := DeclineNoun("domus", DeclFourth, Feminine, "domus", overrides, false)
	assert.Len(t, got, 13)
	assert.Equal(t, "domo", got[Key(Ablative, Singular)])
	assert.Equal(t, "domi", got[Key(Locative, Singular)])
	assert.Equal(t, "domui", got[Key(Dative, Singular)])

	// dea: the dative and ablative plural differ from the first declension.
	dea := DeclineNoun("dea", DeclFirst, Feminine, "deae", NominalOverrides{
		Key(Dative, Plural):   "deabus",
		Key(Ablative, Plural): "deabus",
	}, false)
	assert.Equal(t, "deabus", dea[Key(Dative, Plural)])
	assert.Equal(t, "deabus", dea[Key(Ablative, Plural)])
	assert.Equal(t, "deae", dea[Key(Genitive, Singular)])
}

func TestDeclineNounSuppressed(t *testing.T) {
	got := DeclineNoun("rosa", DeclFirst, Feminine, "rosae", NominalOverrides{Key(Vocative, Plural): Suppressed}, false)
	assert.Len(t, got, 11)
	_, ok := got[Key(Vocative, Plural)]
	assert.False(t, ok)
}

func TestDeclineNounCannotGenerate(t *testing.T) {
	assert.Empty(t, DeclineNoun("rosa", DeclFirst, Feminine, "", nil, false))
	assert.Empty(t, DeclineNoun("rosa", DeclFirst, Feminine, "rosis", nil, false))
	assert.Empty(t, DeclineNoun("vis", DeclIrregular, Feminine, "vis", nil, false))

	only := DeclineNoun("vis", DeclIrregular, Feminine, "", NominalOverrides{Key(Accusative, Singular): "vim"}, false)
	assert.Equal(t, NominalForms{Key(Accusative, Singular): "vim"}, only)
}

func TestDeclineInvariable(t *testing.T) {
	got := DeclineInvariable("nihil", nil)
	require.Len(t, got, 12)
	for k, v := range got {
		assert.Equal(t, "nihil", v, k.String())
	}
}

func TestDeclineAdjectiveFirstSecond(t *testing.T) {
	got := DeclineAdjective("bonus", DeclSecond, "boni", nil)
	require.Len(t, got, 3)
	for g, forms := range got {
		assert.Len(t, forms, 12, g.String())
	}
	assert.Equal(t, "bonus", got[Masculine][Key(Nominative, Singular)])
	assert.Equal(t, "bone", got[Masculine][Key(Vocative, Singular)])
	assert.Equal(t, "bona", got[Feminine][Key(Nominative, Singular)])
	assert.Equal(t, "bonae", got[Feminine][Key(Genitive, Singular)])
	assert.Equal(t, "bonarum", got[Feminine][Key(Genitive, Plural)])
	assert.Equal(t, "bonum", got[Neuter][Key(Accusative, Singular)])
	assert.Equal(t, "bona", got[Neuter][Key(Nominative, Plural)])

	pulcher := DeclineAdjective("pulcher", DeclFirst, "pulchri", nil)
	assert.Equal(t, "pulcher", pulcher[Masculine][Key(Vocative, Singular)])
	assert.Equal(t, "pulchra", pulcher[Feminine][Key(Nominative, Singular)])
	assert.Equal(t, "pulchrum", pulcher[Neuter][Key(Nominative, Singular)])
}

func TestDeclineAdjectiveThird(t *testing.T) {
	tests := []struct {
		lemma, genitive string
		masc, fem, neut string
		neutPl, ablSg   string
		genPl           string
	}{
		{"fortis", "fortis", "fortis", "fortis", "forte", "fortia", "forti", "fortium"},
		{"acer", "acris", "acer", "acris", "acre", "acria", "acri", "acrium"},
		{"ingens", "ingentis", "ingens", "ingens", "ingens", "ingentia", "ingenti", "ingentium"},
	}
	for _, tt := range tests {
		t.Run(tt.lemma, func(t *testing.T) {
			got := DeclineAdjective(tt.lemma, DeclThird, tt.genitive, nil)
			assert.Equal(t, tt.masc, got[Masculine][Key(Nominative, Singular)])
			assert.Equal(t, tt.fem, got[Feminine][Key(Nominative, Singular)])
			assert.Equal(t, tt.neut, got[Neuter][Key(Nominative, Singular)])
			assert.Equal(t, tt.neut, got[Neuter][Key(Accusative, Singular)])
			assert.Equal(t, tt.neutPl, got[Neuter][Key(Nominative, Plural)])
			assert.Equal(t, tt.ablSg, got[Masculine][Key(Ablative, Singular)])
			assert.Equal(t, tt.genPl, got[Feminine][Key(Genitive, Plural)])
		})
	}
}

func TestDeclineAdjectiveOverrides(t *testing.T) {
	overrides := NominalOverrides{
		Key(Genitive, Singular):                      "unius",
		Key(Dative, Singular):                        "uni",
		Key(Nominative, Singular).WithGender(Neuter): "unum!",
	}
	got := DeclineAdjective("unus", DeclSecond, "uni", overrides)
	for _, g := range genders {
		assert.Equal(t, "unius", got[g][Key(Genitive, Singular)], g.String())
		assert.Equal(t, "uni", got[g][Key(Dative, Singular)], g.String())
	}
	assert.Equal(t, "unum!", got[Neuter][Key(Nominative, Singular)])
	assert.Equal(t, "una", got[Feminine][Key(Nominative, Singular)])
}

func TestDeclineAdjectiveCannotGenerate(t *testing.T) {
	got := DeclineAdjective("bonus", DeclSecond, "", nil)
	require.Len(t, got, 3)
	for _, forms := range got {
		assert.Empty(t, forms)
	}
}

func TestDeclineNounParisyllabicOnlyChangesGenitivePlural(t *testing.T) {
	tests := []struct {
		lemma, genitive string
		gender          Gender
		pari, impari    string
	}{
		{"civis", "civis", Common, "civium", "civum"},
		{"hostis", "hostis", Masculine, "hostium", "hostum"},
		{"animal", "animalis", Neuter, "animalium", "animalum"},
	}
	for _, tt := range tests {
		t.Run(tt.lemma, func(t *testing.T) {
			pari := DeclineNoun(tt.lemma, DeclThird, tt.gender, tt.genitive, nil, true).Strings()
			impari := DeclineNoun(tt.lemma, DeclThird, tt.gender, tt.genitive, nil, false).Strings()
			require.Len(t, pari, 12)
			require.Len(t, impari, 12)
			assert.Equal(t, tt.pari, pari["gen_pl"])
			assert.Equal(t, tt.impari, impari["gen_pl"])

			delete(pari, "gen_pl")
			delete(impari, "gen_pl")
			if diff := cmp.Diff(impari, pari); diff != "" {
				t.Errorf("%s: forms other than gen_pl differ (-imparisyllabic +parisyllabic):\n%s", tt.lemma, diff)
			}
		})
	}
}
