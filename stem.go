package paradigm

import "strings"

// genitiveEndings is the genitive singular ending stripped to find the
// stem of each regular declension.
var genitiveEndings = map[Declension]string{
	DeclFirst:  "ae",
	DeclSecond: "i",
	DeclThird:  "is",
	DeclFourth: "us",
	DeclFifth:  "ei",
}

// NominalStem derives the declension stem from a genitive singular, e.g.
// "ros" from "rosae" or "reg" from "regis". It reports false when the
// genitive is missing, the declension has no rule, or the genitive does not
// carry that declension's ending.
func NominalStem(d Declension, genitive string) (string, bool) {
	ending, ok := genitiveEndings[d]
	if !ok {
		return "", false
	}
	gen := firstField(genitive)
	if gen == "" {
		return "", false
	}
	stem, ok := cutSuffix(gen, ending)
	if !ok || stem == "" {
		return "", false
	}
	return stem, true
}

// PrincipalParts holds the four canonical forms of a verb. Absent slots
// are empty. Deponents carry the perfect participle phrase ("miratus sum")
// in the Perfect slot.
type PrincipalParts struct {
	Present    string
	Infinitive string
	Perfect    string
	Supine     string
}

// ParsePrincipalParts splits "amo, amare, amavi, amatum". A dash in any
// slot marks it absent.
func ParsePrincipalParts(s string) PrincipalParts {
	var slots [4]string
	for i, p := range strings.Split(s, ",") {
		if i >= len(slots) {
			break
		}
		p = strings.TrimSpace(p)
		switch p {
		case "-", "–", "—":
			p = ""
		}
		slots[i] = p
	}
	return PrincipalParts{Present: slots[0], Infinitive: slots[1], Perfect: slots[2], Supine: slots[3]}
}

func (pp PrincipalParts) String() string {
	parts := []string{pp.Present, pp.Infinitive, pp.Perfect, pp.Supine}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		if p == "" {
			parts[i] = "-"
		}
	}
	return strings.Join(parts, ", ")
}

// Deponent reports whether the parts are in passive shape throughout
// (miror, mirari, miratus sum).
func (pp PrincipalParts) Deponent() bool {
	return hasSuffix(pp.Present, "or")
}

// SemiDeponent reports whether the verb is active in the present system
// but passive in shape in the perfect system (audeo, audere, ausus sum).
func (pp PrincipalParts) SemiDeponent() bool {
	return !pp.Deponent() && periphrastic(pp.Perfect)
}

func periphrastic(perfect string) bool {
	f := strings.Fields(perfect)
	return len(f) > 1 || (len(f) == 1 && hasSuffix(f[0], "us"))
}

// VerbStems are the three stems every verbal form is built from.
type VerbStems struct {
	// Present is the infinitive minus its conjugation ending: "am", "mon",
	// "reg", "cap", "aud".
	Present string
	// Perfect is the third principal part minus "-i"; empty for deponents
	// and semi-deponents.
	Perfect string
	// Supine is the participle stem, "amat" from "amatum"; empty when the
	// fourth principal part is absent or is not a supine.
	Supine string
	// Future is a fourth principal part given as the future active
	// participle ("mansurus"), as dictionaries do for intransitive verbs.
	Future string
	// Participle is the perfect participle of a (semi-)deponent as given in
	// its third principal part, "miratus".
	Participle string
}

var (
	activeInfinitives = map[Conjugation]string{
		ConjFirst: "are", ConjSecond: "ere", ConjThird: "ere", ConjThirdIO: "ere", ConjFourth: "ire",
	}
	passiveInfinitives = map[Conjugation]string{
		ConjFirst: "ari", ConjSecond: "eri", ConjThird: "i", ConjThirdIO: "i", ConjFourth: "iri",
	}
	activeFirstPersons = map[Conjugation]string{
		ConjFirst: "o", ConjSecond: "eo", ConjThird: "o", ConjThirdIO: "io", ConjFourth: "io",
	}
	passiveFirstPersons = map[Conjugation]string{
		ConjFirst: "or", ConjSecond: "eor", ConjThird: "or", ConjThirdIO: "ior", ConjFourth: "ior",
	}
)

// ExtractVerbStems derives the stems of a regular verb. It reports false
// when no present stem can be found, which includes every irregular verb:
// those take their whole paradigm from overrides.
func ExtractVerbStems(c Conjugation, pp PrincipalParts) (VerbStems, bool) {
	inf, first := activeInfinitives, activeFirstPersons
	if pp.Deponent() {
		inf, first = passiveInfinitives, passiveFirstPersons
	}
	ending, ok := inf[c]
	if !ok {
		return VerbStems{}, false
	}

	var st VerbStems
	if s, ok := cutSuffix(pp.Infinitive, ending); ok && s != "" {
		st.Present = s
	} else if s, ok := cutSuffix(pp.Present, first[c]); ok && s != "" {
		st.Present = s
	} else {
		return VerbStems{}, false
	}

	if pp.Deponent() || pp.SemiDeponent() {
		st.Participle = firstField(pp.Perfect)
		if s, ok := cutSuffix(st.Participle, "us"); ok && s != "" {
			st.Supine = s
		} else {
			st.Participle = ""
		}
		return st, true
	}

	if s, ok := cutSuffix(pp.Perfect, "i"); ok && s != "" {
		st.Perfect = s
	}
	fourth := firstField(pp.Supine)
	if s, ok := cutSuffix(fourth, "um"); ok && s != "" {
		st.Supine = s
	} else if hasSuffix(fourth, "urus") {
		st.Future = fourth
	}
	return st, true
}

// firstField returns the first comma- or space-separated word of s.
func firstField(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ", \t"); i >= 0 {
		s = s[:i]
	}
	return s
}
