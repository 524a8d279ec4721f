package paradigm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes, drops combining marks (macrons, breves, acutes)
// and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases s and strips every diacritic, so that "Puellā" and
// "puella" compare equal. It is idempotent.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// deramiseReplacer converts Ramist spelling (j/v) to classical (i/u) and
// expands the ae/oe ligatures.
var deramiseReplacer = strings.NewReplacer(
	"j", "i",
	"v", "u",
	"æ", "ae",
	"œ", "oe",
)

// Fold normalizes s and also neutralizes orthographic variants: j/i, v/u
// and the ligatures. Use it to compare answers typed in either spelling.
func Fold(s string) string {
	return deramiseReplacer.Replace(Normalize(s))
}

// Matches reports whether a user's answer equals the expected form,
// ignoring case, vowel quantity and j/v spelling.
func Matches(input, expected string) bool {
	return Fold(strings.TrimSpace(input)) == Fold(strings.TrimSpace(expected))
}

// bare returns the composed runes of s alongside their lower-case base
// letters, one for one, so a suffix can be matched without regard to
// macrons and then cut from the original text with its marks intact.
func bare(s string) (orig, base []rune) {
	orig = []rune(norm.NFC.String(s))
	base = make([]rune, len(orig))
	for i, r := range orig {
		d := []rune(norm.NFD.String(string(r)))
		base[i] = unicode.ToLower(d[0])
	}
	return orig, base
}

// cutSuffix removes suffix from s when s ends with it, comparing on base
// letters. The remaining stem keeps its original marks.
func cutSuffix(s, suffix string) (string, bool) {
	orig, base := bare(s)
	suf := []rune(Normalize(suffix))
	if len(suf) > len(base) {
		return "", false
	}
	tail := base[len(base)-len(suf):]
	for i := range suf {
		if tail[i] != suf[i] {
			return "", false
		}
	}
	return string(orig[:len(orig)-len(suf)]), true
}

// hasSuffix reports whether s ends with suffix, ignoring marks and case.
func hasSuffix(s, suffix string) bool {
	_, ok := cutSuffix(s, suffix)
	return ok
}
