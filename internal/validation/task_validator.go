package validation

// TaskFields is the raw, user supplied content of a task.
type TaskFields struct {
	Text string `field:"text"`
	Time string `field:"time" validate:"omitempty,datetime=15:04"`
	Link string `field:"link" validate:"omitempty,url"`
}

// TaskValidator provides validation for task operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return NewTaskValidatorWith(NewValidator())
}

// NewTaskValidatorWith creates a task validator sharing v
func NewTaskValidatorWith(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateText validates a task's text. Text is required when creating.
func (tv *TaskValidator) ValidateText(text string, required bool) error {
	validationError := NewValidationError()
	trimmed := tv.validator.TrimAndValidateString(text)

	if required && !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("text")
		return validationError
	}

	max := tv.validator.Limits().TextMaxLength
	if !tv.validator.IsValidStringLength(trimmed, max) {
		validationError.AddInvalidLengthError("text", trimmed, max)
	}

	return validationError.ErrOrNil()
}

// ValidateFields checks the format of time and link, and that a time of
// day is only given for a task that has a date. hasDay reports whether the
// task will have a date once the change is applied.
func (tv *TaskValidator) ValidateFields(fields TaskFields, hasDay bool) error {
	validationError := NewValidationError()

	if err := tv.validator.Struct(fields); err != nil {
		validationError.Merge("task", err)
	}

	if fields.Time != "" && !hasDay {
		validationError.AddInvalidValueError("time", fields.Time, "a time of day needs a date")
	}

	return validationError.ErrOrNil()
}

// ValidateTaskForCreation validates the fields of a new task
func (tv *TaskValidator) ValidateTaskForCreation(fields TaskFields, hasDay bool) error {
	validationError := NewValidationError()
	validationError.Merge("text", tv.ValidateText(fields.Text, true))
	validationError.Merge("task", tv.ValidateFields(fields, hasDay))
	return validationError.ErrOrNil()
}

// ValidateTaskForUpdate validates the fields changed by an update. Text is
// only checked when it is being changed.
func (tv *TaskValidator) ValidateTaskForUpdate(id string, fields TaskFields, textChanged, hasDay bool) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(id) {
		validationError.AddRequiredError("id")
	}
	if textChanged {
		validationError.Merge("text", tv.ValidateText(fields.Text, true))
	}
	validationError.Merge("task", tv.ValidateFields(fields, hasDay))

	return validationError.ErrOrNil()
}
