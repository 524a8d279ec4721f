package paradigm

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Suppressed is the override value that removes a slot from the generated
// paradigm. Defective nouns and verbs use it for forms that do not exist.
const Suppressed = "-"

// NominalOverrides maps nominal keys to forms that replace (or add to)
// the rule-generated ones.
type NominalOverrides map[NominalKey]string

// VerbalOverrides maps verbal keys to forms that replace (or add to) the
// rule-generated ones.
type VerbalOverrides map[VerbalKey]string

// ParseNominalOverrides converts a persisted override object into typed
// overrides. Malformed entries are left out and reported together in the
// returned error; the well-formed ones are always returned.
func ParseNominalOverrides(raw map[string]string) (NominalOverrides, error) {
	out := make(NominalOverrides, len(raw))
	var errs []error
	for _, k := range sortedKeys(raw) {
		v := strings.TrimSpace(raw[k])
		key, err := ParseNominalKey(strings.TrimSpace(k))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v == "" {
			errs = append(errs, fmt.Errorf("override %q: empty form: %w", k, ErrMalformedOverride))
			continue
		}
		out[key] = v
	}
	return out, errors.Join(errs...)
}

// ParseVerbalOverrides is the verbal counterpart of ParseNominalOverrides.
func ParseVerbalOverrides(raw map[string]string) (VerbalOverrides, error) {
	out := make(VerbalOverrides, len(raw))
	var errs []error
	for _, k := range sortedKeys(raw) {
		v := strings.TrimSpace(raw[k])
		key, err := ParseVerbalKey(strings.TrimSpace(k))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v == "" {
			errs = append(errs, fmt.Errorf("override %q: empty form: %w", k, ErrMalformedOverride))
			continue
		}
		out[key] = v
	}
	return out, errors.Join(errs...)
}

// resolve writes every override over the generated forms: an override
// always wins, may add a slot the rules never produce, and removes the
// slot when its value is Suppressed. generated is modified in place.
func resolve[K comparable](generated map[K]string, overrides map[K]string) map[K]string {
	for k, v := range overrides {
		if v == Suppressed {
			delete(generated, k)
			continue
		}
		generated[k] = v
	}
	return generated
}

// merge returns the union of base and top, top winning. Neither input is
// modified.
func merge[K comparable](base, top map[K]string) map[K]string {
	out := make(map[K]string, len(base)+len(top))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range top {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
