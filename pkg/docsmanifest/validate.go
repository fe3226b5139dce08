package docsmanifest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// Validator checks manifest invariants
type Validator struct {
	validate  *validator.Validate
	platforms map[Platform]struct{}
}

// NewValidator creates a validator accepting the given platform keys
func NewValidator(platforms []Platform) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	known := make(map[Platform]struct{}, len(platforms))
	for _, p := range platforms {
		known[p] = struct{}{}
	}
	return &Validator{validate: v, platforms: known}
}

// Validate returns the first invariant violation, or nil
func (v *Validator) Validate(m *Manifest) error {
	if len(m.Sections) == 0 {
		return NewValidationError("manifest", ErrNoPlatforms)
	}

	seenPlatforms := make(map[Platform]struct{}, len(m.Sections))
	for _, s := range m.Sections {
		field := fmt.Sprintf("platform %q", s.Platform)
		if !s.Platform.Valid() {
			return NewValidationError(field, ErrMalformedPlatform)
		}
		if _, ok := v.platforms[s.Platform]; !ok {
			return NewValidationError(field, ErrUnknownPlatform)
		}
		if _, dup := seenPlatforms[s.Platform]; dup {
			return NewValidationError(field, ErrDuplicatePlatform)
		}
		seenPlatforms[s.Platform] = struct{}{}

		if len(s.Entries) == 0 {
			return NewValidationError(field, ErrEmptyPlatform)
		}
		if err := v.validateEntries(s); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateEntries(s Section) error {
	seen := make(map[string]int, len(s.Entries))
	for i, e := range s.Entries {
		if err := v.validate.Struct(e); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
				field := fmt.Sprintf("%s[%d].%s", s.Platform, i, fieldErrs[0].Field())
				return NewValidationError(field, ErrEmptyField)
			}
			return NewValidationError(fmt.Sprintf("%s[%d]", s.Platform, i), err)
		}
		if first, dup := seen[e.ID]; dup {
			return &ValidationError{
				Field:   fmt.Sprintf("%s[%d].id", s.Platform, i),
				Message: fmt.Sprintf("%v %q (first declared at index %d)", ErrDuplicateID, e.ID, first),
				Err:     ErrDuplicateID,
			}
		}
		seen[e.ID] = i
	}
	return nil
}

// normalize trims surrounding whitespace and applies Unicode NFC to every
// entry field, in place
func normalize(m *Manifest) {
	for i := range m.Sections {
		entries := m.Sections[i].Entries
		for j := range entries {
			entries[j].ID = normalizeText(entries[j].ID)
			entries[j].Title = normalizeText(entries[j].Title)
			entries[j].Description = normalizeText(entries[j].Description)
		}
	}
}

func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
