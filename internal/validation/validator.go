package validation

import (
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Limits bounds free-text fields.
type Limits struct {
	TextMaxLength      int
	NameMaxLength      int
	ExercisesMaxLength int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		TextMaxLength:      500,
		NameMaxLength:      100,
		ExercisesMaxLength: 500,
	}
}

// Validator provides common validation utilities on top of validator/v10
type Validator struct {
	validate *validator.Validate
	limits   Limits
}

// NewValidator creates a new validator instance with default limits
func NewValidator() *Validator {
	return NewValidatorWithLimits(DefaultLimits())
}

// NewValidatorWithLimits creates a new validator instance with the given limits
func NewValidatorWithLimits(limits Limits) *Validator {
	validate := validator.New()
	// Report fields by their "field" tag so messages use user-facing names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("field"); name != "" {
			return name
		}
		return strings.ToLower(f.Name)
	})
	return &Validator{validate: validate, limits: limits}
}

// Limits returns the configured limits
func (v *Validator) Limits() Limits {
	return v.limits
}

// Struct runs the struct tags of s and converts failures into a ValidationError
func (v *Validator) Struct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		ve := NewValidationError()
		ve.AddValidatorErrors(err)
		return ve
	}
	return nil
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks that a string has at most max characters
func (v *Validator) IsValidStringLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// IsValidURL checks that s is an absolute URL
func (v *Validator) IsValidURL(s string) bool {
	return v.validate.Var(s, "url") == nil
}

// IsValidClock checks that s is an HH:MM time of day
func (v *Validator) IsValidClock(s string) bool {
	return v.validate.Var(s, "datetime=15:04") == nil
}

// IsReasonableDate checks that a date lies within a century of now
func (v *Validator) IsReasonableDate(t, now time.Time) bool {
	return t.After(now.AddDate(-100, 0, 0)) && t.Before(now.AddDate(100, 0, 0))
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
