package validation

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Violation is a single failed struct tag
type Violation struct {
	Field string
	Tag   string
	Param string
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// GetValidator returns the global validator instance, building it on first use
func GetValidator() *Validator {
	validateOnce.Do(func() {
		validate = &Validator{validate: validator.New()}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// Violations flattens a validator error into field/tag pairs.
// Errors that did not come from tag validation yield nil.
func Violations(err error) []Violation {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make([]Violation, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, Violation{Field: e.Field(), Tag: e.Tag(), Param: e.Param()})
	}
	return out
}
