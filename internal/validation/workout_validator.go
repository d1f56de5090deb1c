package validation

import (
	"sort"

	"organizer/internal/domain"
)

// WorkoutDayFields is the raw content of one weekday of a plan.
type WorkoutDayFields struct {
	Time      string `field:"time" validate:"omitempty,datetime=15:04"`
	Exercises string `field:"exercises"`
}

// IsRest reports whether neither a time nor exercises were given.
func (d WorkoutDayFields) IsRest() bool {
	return d.Time == "" && d.Exercises == ""
}

// WorkoutFields is the raw content of a workout plan form.
type WorkoutFields struct {
	Name string                      `field:"name"`
	Days map[string]WorkoutDayFields `field:"days"`
}

// WorkoutValidator provides validation for workout plans
type WorkoutValidator struct {
	validator *Validator
}

// NewWorkoutValidator creates a new workout validator
func NewWorkoutValidator() *WorkoutValidator {
	return NewWorkoutValidatorWith(NewValidator())
}

// NewWorkoutValidatorWith creates a workout validator sharing v
func NewWorkoutValidatorWith(v *Validator) *WorkoutValidator {
	return &WorkoutValidator{validator: v}
}

// ValidateName validates the plan name, which is required
func (wv *WorkoutValidator) ValidateName(name string) error {
	validationError := NewValidationError()
	trimmed := wv.validator.TrimAndValidateString(name)

	if !wv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("name")
		return validationError
	}

	max := wv.validator.Limits().NameMaxLength
	if !wv.validator.IsValidStringLength(trimmed, max) {
		validationError.AddInvalidLengthError("name", trimmed, max)
	}
	return validationError.ErrOrNil()
}

// ValidatePlan validates a whole plan. Weekday keys must name one of the
// seven weekdays, each at most once across aliases. Days left blank are rest
// days and are not checked.
func (wv *WorkoutValidator) ValidatePlan(fields WorkoutFields) error {
	validationError := NewValidationError()
	validationError.Merge("name", wv.ValidateName(fields.Name))

	keys := make([]string, 0, len(fields.Days))
	for key := range fields.Days {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	max := wv.validator.Limits().ExercisesMaxLength
	seen := make(map[domain.WeekdayName]string, len(keys))
	for _, key := range keys {
		day := fields.Days[key]
		name, ok := domain.ParseWeekdayName(key)
		if !ok {
			validationError.AddInvalidValueError("day", key, "unknown weekday")
			continue
		}
		if first, dup := seen[name]; dup {
			validationError.AddInvalidValueError("day", key, "same weekday as "+first)
			continue
		}
		seen[name] = key
		if day.IsRest() {
			continue
		}
		if err := wv.validator.Struct(day); err != nil {
			validationError.Merge(key, err)
		}
		if !wv.validator.IsValidStringLength(day.Exercises, max) {
			validationError.AddInvalidLengthError("exercises", day.Exercises, max)
		}
	}

	return validationError.ErrOrNil()
}
