package validation

import (
	"strings"
	"testing"
)

func TestTaskValidator_ValidateText(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		required    bool
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid text", "Calc Final", true, false, ""},
		{"Empty text required", "", true, true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, true, ErrorTypeRequired},
		{"Empty text optional", "", false, false, ""},
		{"Too long", strings.Repeat("a", 501), true, true, ErrorTypeInvalidLength},
		{"Longest allowed", strings.Repeat("a", 500), true, false, ""},
		{"Accents and emoji", "Reunião de equipe 🙌", true, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateText(tt.input, tt.required)

			if !tt.expectError {
				if err != nil {
					t.Errorf("ValidateText(%q) expected no error but got %v", tt.input, err)
				}
				return
			}
			if err == nil {
				t.Errorf("ValidateText(%q) expected error but got nil", tt.input)
				return
			}
			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Errorf("ValidateText(%q) expected ValidationError but got %T", tt.input, err)
				return
			}
			if validationErr.Errors[0].Type != tt.errorType {
				t.Errorf("ValidateText(%q) expected error type %v but got %v", tt.input, tt.errorType, validationErr.Errors[0].Type)
			}
		})
	}
}

func TestTaskValidator_ValidateFields(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		fields      TaskFields
		hasDay      bool
		expectError bool
		field       string
	}{
		{"No optional fields", TaskFields{Text: "x"}, false, false, ""},
		{"Time with date", TaskFields{Time: "14:00"}, true, false, ""},
		{"Time without date", TaskFields{Time: "14:00"}, false, true, "time"},
		{"Malformed time", TaskFields{Time: "2pm"}, true, true, "time"},
		{"Valid link", TaskFields{Link: "https://youtu.be/abc"}, false, false, ""},
		{"Relative link", TaskFields{Link: "youtu.be/abc"}, false, true, "link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateFields(tt.fields, tt.hasDay)

			if !tt.expectError {
				if err != nil {
					t.Errorf("ValidateFields() expected no error but got %v", err)
				}
				return
			}
			if err == nil {
				t.Errorf("ValidateFields() expected error but got nil")
				return
			}
			if len(err.(*ValidationError).GetFieldErrors(tt.field)) == 0 {
				t.Errorf("ValidateFields() expected an error on %q, got %v", tt.field, err)
			}
		})
	}
}

func TestTaskValidator_ValidateTaskForCreation(t *testing.T) {
	validator := NewTaskValidator()

	if err := validator.ValidateTaskForCreation(TaskFields{Text: "Prova"}, false); err != nil {
		t.Errorf("expected valid task, got %v", err)
	}

	err := validator.ValidateTaskForCreation(TaskFields{Text: "", Link: "bad"}, false)
	if err == nil {
		t.Fatal("expected error for empty text and bad link")
	}
	if got := len(err.(*ValidationError).Errors); got != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", got, err)
	}
}

func TestTaskValidator_ValidateTaskForUpdate(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		id          string
		fields      TaskFields
		textChanged bool
		hasDay      bool
		expectError bool
	}{
		{"Urgent only", "abc", TaskFields{}, false, false, false},
		{"Missing id", "", TaskFields{}, false, false, true},
		{"Blank new text", "abc", TaskFields{Text: " "}, true, false, true},
		{"New text", "abc", TaskFields{Text: "Nova prova"}, true, false, false},
		{"Time on dated task", "abc", TaskFields{Time: "08:00"}, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskForUpdate(tt.id, tt.fields, tt.textChanged, tt.hasDay)
			if tt.expectError && err == nil {
				t.Errorf("ValidateTaskForUpdate() expected error but got nil")
			} else if !tt.expectError && err != nil {
				t.Errorf("ValidateTaskForUpdate() expected no error but got %v", err)
			}
		})
	}
}
