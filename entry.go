package paradigm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LexicalEntry is a dictionary headword with the grammatical metadata the
// generators need. It mirrors the persisted record: codes are kept as the
// strings stored in the lexicon and parsed on use.
type LexicalEntry struct {
	ID             string            `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Lemma          string            `json:"lemma" yaml:"lemma" toml:"lemma" validate:"required"`
	PartOfSpeech   string            `json:"part_of_speech" yaml:"part_of_speech" toml:"part_of_speech" validate:"required"`
	Declension     string            `json:"declension,omitempty" yaml:"declension,omitempty" toml:"declension,omitempty"`
	Gender         string            `json:"gender,omitempty" yaml:"gender,omitempty" toml:"gender,omitempty"`
	Genitive       string            `json:"genitive,omitempty" yaml:"genitive,omitempty" toml:"genitive,omitempty"`
	PrincipalParts string            `json:"principal_parts,omitempty" yaml:"principal_parts,omitempty" toml:"principal_parts,omitempty"`
	Conjugation    string            `json:"conjugation,omitempty" yaml:"conjugation,omitempty" toml:"conjugation,omitempty"`
	Parisyllabic   bool              `json:"parisyllabic,omitempty" yaml:"parisyllabic,omitempty" toml:"parisyllabic,omitempty"`
	Invariable     bool              `json:"invariable,omitempty" yaml:"invariable,omitempty" toml:"invariable,omitempty"`
	Overrides      map[string]string `json:"overrides,omitempty" yaml:"overrides,omitempty" toml:"overrides,omitempty"`
}

// Ref returns the identifier used to point back at the entry: its ID when
// set, otherwise its lemma.
func (e LexicalEntry) Ref() string {
	if e.ID != "" {
		return e.ID
	}
	return e.Lemma
}

// Validate checks that the entry carries what its part of speech needs:
// nominals a declension, gender and genitive unless invariable, verbs a
// conjugation and principal parts unless overrides alone suffice. Every
// problem found is reported; errors wrap ErrMissingData,
// ErrUnknownParadigm or ErrMalformedOverride.
func (e LexicalEntry) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("entry %q: %w: %v", e.Lemma, ErrMissingData, err)
	}
	pos, err := ParsePartOfSpeech(e.PartOfSpeech)
	if err != nil {
		return fmt.Errorf("entry %q: %w", e.Lemma, err)
	}

	var errs []error
	missing := func(field string) {
		errs = append(errs, fmt.Errorf("entry %q: no %s: %w", e.Lemma, field, ErrMissingData))
	}
	hasOverrides := len(e.Overrides) > 0

	switch pos {
	case POSNoun, POSAdjective:
		if _, err := ParseNominalOverrides(e.Overrides); err != nil {
			errs = append(errs, err)
		}
		if e.Invariable {
			break
		}
		var d Declension
		if strings.TrimSpace(e.Declension) == "" {
			missing("declension")
		} else if d, err = ParseDeclension(e.Declension); err != nil {
			errs = append(errs, err)
		}
		if pos == POSNoun {
			if strings.TrimSpace(e.Gender) == "" {
				missing("gender")
			} else if _, err := ParseGender(e.Gender); err != nil {
				errs = append(errs, err)
			}
		}
		if strings.TrimSpace(e.Genitive) == "" && !(d == DeclIrregular && hasOverrides) {
			missing("genitive")
		}
	case POSPronoun:
		if _, err := ParseNominalOverrides(e.Overrides); err != nil {
			errs = append(errs, err)
		}
		if len(DeclinePronoun(e.Lemma)) == 0 && !hasOverrides {
			errs = append(errs, fmt.Errorf("entry %q: not a known pronoun: %w", e.Lemma, ErrMissingData))
		}
	case POSVerb:
		if _, err := ParseVerbalOverrides(e.Overrides); err != nil {
			errs = append(errs, err)
		}
		if strings.TrimSpace(e.Conjugation) == "" {
			missing("conjugation")
			break
		}
		c, err := ParseConjugation(e.Conjugation)
		if err != nil {
			errs = append(errs, err)
			break
		}
		_, builtin := lookupIrregular(e.Lemma, c)
		if strings.TrimSpace(e.PrincipalParts) == "" && !hasOverrides && !builtin {
			missing("principal parts")
		}
	}
	return errors.Join(errs...)
}
