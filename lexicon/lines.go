package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cours-de-latin/paradigm"
)

// ParseLines reads the line format, one entry per line:
//
//	[id=]lemma|pos|class|gender|forms|flags|overrides
//
// class is the declension or conjugation code, forms the genitive of a
// nominal or the principal parts of a verb. flags is a comma-separated
// list of "parisyllabic" and "invariable"; overrides is a
// semicolon-separated list of key=form pairs. Trailing fields may be
// omitted. Lines starting with "!" are comments.
//
//	rosa|noun|1|f|rosae
//	domus|noun|4|f|domus||abl_sg=domo;loc_sg=domi
//	volo2=volo|verb|1||volo, volare, volavi, volatum
func ParseLines(r io.Reader) ([]paradigm.LexicalEntry, error) {
	var entries []paradigm.LexicalEntry
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

const (
	fieldLemma = iota
	fieldPOS
	fieldClass
	fieldGender
	fieldForms
	fieldFlags
	fieldOverrides
	fieldCount
)

func parseLine(line string) (paradigm.LexicalEntry, error) {
	eclats := strings.Split(line, "|")
	if len(eclats) < fieldPOS+1 {
		return paradigm.LexicalEntry{}, fmt.Errorf("%q: want at least lemma|pos", line)
	}
	if len(eclats) > fieldCount {
		return paradigm.LexicalEntry{}, fmt.Errorf("%q: %d fields, want at most %d", line, len(eclats), fieldCount)
	}
	field := func(i int) string {
		if i < len(eclats) {
			return strings.TrimSpace(eclats[i])
		}
		return ""
	}

	var e paradigm.LexicalEntry
	e.Lemma = field(fieldLemma)
	if id, lemma, ok := strings.Cut(e.Lemma, "="); ok {
		e.ID, e.Lemma = strings.TrimSpace(id), strings.TrimSpace(lemma)
	}
	e.PartOfSpeech = field(fieldPOS)

	pos, err := paradigm.ParsePartOfSpeech(e.PartOfSpeech)
	if err != nil {
		return paradigm.LexicalEntry{}, err
	}
	if pos == paradigm.POSVerb {
		e.Conjugation = field(fieldClass)
		e.PrincipalParts = field(fieldForms)
	} else {
		e.Declension = field(fieldClass)
		e.Genitive = field(fieldForms)
	}
	e.Gender = field(fieldGender)

	for _, flag := range strings.Split(field(fieldFlags), ",") {
		switch strings.TrimSpace(flag) {
		case "":
		case "parisyllabic":
			e.Parisyllabic = true
		case "invariable":
			e.Invariable = true
		default:
			return paradigm.LexicalEntry{}, fmt.Errorf("unknown flag %q", flag)
		}
	}

	if raw := field(fieldOverrides); raw != "" {
		e.Overrides = make(map[string]string)
		for _, pair := range strings.Split(raw, ";") {
			k, v, ok := strings.Cut(pair, "=")
			if !ok {
				return paradigm.LexicalEntry{}, fmt.Errorf("override %q: want key=form: %w", pair, paradigm.ErrMalformedOverride)
			}
			e.Overrides[strings.TrimSpace(k)] = strings.TrimSpace(v)
		}
	}
	return e, nil
}

// FormatLine renders e in the line format. ParseLines(FormatLine(e))
// yields e again.
func FormatLine(e paradigm.LexicalEntry) string {
	lemma := e.Lemma
	if e.ID != "" {
		lemma = e.ID + "=" + lemma
	}
	class, forms := e.Declension, e.Genitive
	if pos, _ := paradigm.ParsePartOfSpeech(e.PartOfSpeech); pos == paradigm.POSVerb {
		class, forms = e.Conjugation, e.PrincipalParts
	}
	var flags []string
	if e.Parisyllabic {
		flags = append(flags, "parisyllabic")
	}
	if e.Invariable {
		flags = append(flags, "invariable")
	}
	keys := make([]string, 0, len(e.Overrides))
	for k := range e.Overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var overrides []string
	for _, k := range keys {
		overrides = append(overrides, k+"="+e.Overrides[k])
	}

	eclats := []string{lemma, e.PartOfSpeech, class, e.Gender, forms, strings.Join(flags, ","), strings.Join(overrides, ";")}
	for len(eclats) > fieldPOS+1 && eclats[len(eclats)-1] == "" {
		eclats = eclats[:len(eclats)-1]
	}
	return strings.Join(eclats, "|")
}
