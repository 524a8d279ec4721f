package paradigm

// Pronoun paradigms are suppletive, so they are listed rather than built
// from stems.

// personalRow lists nom, voc, gen, dat, acc, abl; an empty cell does not
// exist.
type personalRow [6]string

// demonstrativeRow lists nom, gen, dat, acc, abl for one gender and number.
type demonstrativeRow [5]string

type personalPronoun struct {
	sg, pl personalRow
}

type demonstrativePronoun struct {
	// rows is indexed by gender (m, f, n) and number.
	rows [3][2]demonstrativeRow
}

var personalPronouns = map[string]personalPronoun{
	"ego": {
		sg: personalRow{"ego", "", "mei", "mihi", "me", "me"},
		pl: personalRow{"nos", "", "nostrum", "nobis", "nos", "nobis"},
	},
	"tu": {
		sg: personalRow{"tu", "tu", "tui", "tibi", "te", "te"},
		pl: personalRow{"vos", "vos", "vestrum", "vobis", "vos", "vobis"},
	},
	"sui": {
		sg: personalRow{"", "", "sui", "sibi", "se", "se"},
		pl: personalRow{"", "", "sui", "sibi", "se", "se"},
	},
}

// personalAliases maps the plural citation forms onto their singular
// entry; both numbers are always returned together.
var personalAliases = map[string]string{
	"nos": "ego",
	"vos": "tu",
	"se":  "sui",
}

var demonstrativePronouns = map[string]demonstrativePronoun{
	"hic": {rows: [3][2]demonstrativeRow{
		{{"hic", "huius", "huic", "hunc", "hoc"}, {"hi", "horum", "his", "hos", "his"}},
		{{"haec", "huius", "huic", "hanc", "hac"}, {"hae", "harum", "his", "has", "his"}},
		{{"hoc", "huius", "huic", "hoc", "hoc"}, {"haec", "horum", "his", "haec", "his"}},
	}},
	"ille": {rows: [3][2]demonstrativeRow{
		{{"ille", "illius", "illi", "illum", "illo"}, {"illi", "illorum", "illis", "illos", "illis"}},
		{{"illa", "illius", "illi", "illam", "illa"}, {"illae", "illarum", "illis", "illas", "illis"}},
		{{"illud", "illius", "illi", "illud", "illo"}, {"illa", "illorum", "illis", "illa", "illis"}},
	}},
	"iste": {rows: [3][2]demonstrativeRow{
		{{"iste", "istius", "isti", "istum", "isto"}, {"isti", "istorum", "istis", "istos", "istis"}},
		{{"ista", "istius", "isti", "istam", "ista"}, {"istae", "istarum", "istis", "istas", "istis"}},
		{{"istud", "istius", "isti", "istud", "isto"}, {"ista", "istorum", "istis", "ista", "istis"}},
	}},
	"is": {rows: [3][2]demonstrativeRow{
		{{"is", "eius", "ei", "eum", "eo"}, {"ei", "eorum", "eis", "eos", "eis"}},
		{{"ea", "eius", "ei", "eam", "ea"}, {"eae", "earum", "eis", "eas", "eis"}},
		{{"id", "eius", "ei", "id", "eo"}, {"ea", "eorum", "eis", "ea", "eis"}},
	}},
	"idem": {rows: [3][2]demonstrativeRow{
		{{"idem", "eiusdem", "eidem", "eundem", "eodem"}, {"eidem", "eorundem", "eisdem", "eosdem", "eisdem"}},
		{{"eadem", "eiusdem", "eidem", "eandem", "eadem"}, {"eaedem", "earundem", "eisdem", "easdem", "eisdem"}},
		{{"idem", "eiusdem", "eidem", "idem", "eodem"}, {"eadem", "eorundem", "eisdem", "eadem", "eisdem"}},
	}},
	"ipse": {rows: [3][2]demonstrativeRow{
		{{"ipse", "ipsius", "ipsi", "ipsum", "ipso"}, {"ipsi", "ipsorum", "ipsis", "ipsos", "ipsis"}},
		{{"ipsa", "ipsius", "ipsi", "ipsam", "ipsa"}, {"ipsae", "ipsarum", "ipsis", "ipsas", "ipsis"}},
		{{"ipsum", "ipsius", "ipsi", "ipsum", "ipso"}, {"ipsa", "ipsorum", "ipsis", "ipsa", "ipsis"}},
	}},
	"qui": {rows: [3][2]demonstrativeRow{
		{{"qui", "cuius", "cui", "quem", "quo"}, {"qui", "quorum", "quibus", "quos", "quibus"}},
		{{"quae", "cuius", "cui", "quam", "qua"}, {"quae", "quarum", "quibus", "quas", "quibus"}},
		{{"quod", "cuius", "cui", "quod", "quo"}, {"quae", "quorum", "quibus", "quae", "quibus"}},
	}},
}

var demonstrativeCases = [5]Case{Nominative, Genitive, Dative, Accusative, Ablative}

// DeclinePronoun looks up a closed-class pronoun. lemma may be the bare
// headword ("hic") or a citation string ("hic, haec, hoc"), with or without
// macrons. Personal pronouns return ungendered keys; demonstratives return
// gender-suffixed keys such as "nom_sg_m". An unknown lemma yields an empty
// map.
func DeclinePronoun(lemma string) NominalForms {
	key := Normalize(firstField(lemma))
	forms := make(NominalForms)

	if alias, ok := personalAliases[key]; ok {
		key = alias
	}
	if p, ok := personalPronouns[key]; ok {
		for ni, row := range [2]personalRow{p.sg, p.pl} {
			for ci, c := range cases {
				if row[ci] != "" {
					forms[Key(c, numbers[ni])] = row[ci]
				}
			}
		}
		return forms
	}

	if p, ok := demonstrativePronouns[key]; ok {
		for gi, g := range genders {
			for ni, n := range numbers {
				for ci, c := range demonstrativeCases {
					forms[Key(c, n).WithGender(g)] = p.rows[gi][ni][ci]
				}
			}
		}
	}
	return forms
}

// Gendered reports whether a paradigm uses gender-suffixed keys, which
// calls for a three-column rendering.
func (f NominalForms) Gendered() bool {
	for k := range f {
		if k.Gender != GenderNone {
			return true
		}
	}
	return false
}
