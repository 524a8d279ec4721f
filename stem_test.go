package paradigm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNominalStem(t *testing.T) {
	tests := []struct {
		decl     Declension
		genitive string
		want     string
		ok       bool
	}{
		{DeclFirst, "rosae", "ros", true},
		{DeclSecond, "lupi", "lup", true},
		{DeclSecond, "pueri, -orum", "puer", true},
		{DeclThird, "rēgis", "rēg", true},
		{DeclFourth, "manus", "man", true},
		{DeclFifth, "diēī", "di", true},
		{DeclFirst, "rosi", "", false},
		{DeclFirst, "", "", false},
		{DeclFirst, "ae", "", false},
		{DeclIrregular, "vis", "", false},
	}
	for _, tt := range tests {
		got, ok := NominalStem(tt.decl, tt.genitive)
		if ok != tt.ok || got != tt.want {
			t.Errorf("NominalStem(%s, %q) = %q, %v; want %q, %v", tt.decl, tt.genitive, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParsePrincipalParts(t *testing.T) {
	pp := ParsePrincipalParts("fero, ferre, tuli, latum")
	assert.Equal(t, PrincipalParts{Present: "fero", Infinitive: "ferre", Perfect: "tuli", Supine: "latum"}, pp)
	assert.Equal(t, "fero, ferre, tuli, latum", pp.String())

	pp = ParsePrincipalParts("venio,venire,veni, -")
	assert.Equal(t, "", pp.Supine)
	assert.Equal(t, "venio, venire, veni", pp.String())

	pp = ParsePrincipalParts("odi, –, odi")
	assert.Equal(t, "", pp.Infinitive)
	assert.Equal(t, "odi, -, odi", pp.String())
}

func TestDeponent(t *testing.T) {
	tests := []struct {
		parts     string
		dep, semi bool
	}{
		{"amo, amare, amavi, amatum", false, false},
		{"miror, mirari, miratus sum", true, false},
		{"audeo, audere, ausus sum", false, true},
		{"gaudeo, gaudere, gavisus", false, true},
	}
	for _, tt := range tests {
		pp := ParsePrincipalParts(tt.parts)
		assert.Equal(t, tt.dep, pp.Deponent(), tt.parts)
		assert.Equal(t, tt.semi, pp.SemiDeponent(), tt.parts)
	}
}

func TestExtractVerbStems(t *testing.T) {
	tests := []struct {
		conj  Conjugation
		parts string
		want  VerbStems
		ok    bool
	}{
		{ConjFirst, "amo, amare, amavi, amatum", VerbStems{Present: "am", Perfect: "amav", Supine: "amat"}, true},
		{ConjThirdIO, "capio, capere, cepi, captum", VerbStems{Present: "cap", Perfect: "cep", Supine: "capt"}, true},
		{ConjFourth, "venio, venire, veni", VerbStems{Present: "ven", Perfect: "ven"}, true},
		{ConjSecond, "maneo, manere, mansi, mansurus", VerbStems{Present: "man", Perfect: "mans", Future: "mansurus"}, true},
		{ConjSecond, "careo, carere, carui, cariturus", VerbStems{Present: "car", Perfect: "caru", Future: "cariturus"}, true},
		{ConjFirst, "amo", VerbStems{Present: "am"}, true},
		{ConjFirst, "miror, mirari, miratus sum", VerbStems{Present: "mir", Supine: "mirat", Participle: "miratus"}, true},
		{ConjSecond, "audeo, audere, ausus sum", VerbStems{Present: "aud", Supine: "aus", Participle: "ausus"}, true},
		{ConjFirst, "", VerbStems{}, false},
		{ConjIrregular, "sum, esse, fui", VerbStems{}, false},
	}
	for _, tt := range tests {
		got, ok := ExtractVerbStems(tt.conj, ParsePrincipalParts(tt.parts))
		assert.Equal(t, tt.ok, ok, tt.parts)
		assert.Equal(t, tt.want, got, tt.parts)
	}
}
