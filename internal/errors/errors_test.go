package errors

import (
	"errors"
	"testing"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "abc")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: abc" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: abc")
	}
	if err.Context["identifier"] != "abc" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewStorageError("write snapshot", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: write snapshot" {
		t.Errorf("NewStorageError message = %v", err.Message)
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("NewStorageError code = %v, want %v", err.Code, "STORAGE_ERROR")
	}
	if err.Cause != cause {
		t.Errorf("NewStorageError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("list", "groceries", "unknown list")

	if err.Message != "invalid input for list: unknown list" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}
	if err.Context["value"] != "groceries" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewLockedError(t *testing.T) {
	err := NewLockedError("/tmp/org")

	if err.Type != ErrorTypeLocked {
		t.Errorf("NewLockedError type = %v, want %v", err.Type, ErrorTypeLocked)
	}
	if err.Context["path"] != "/tmp/org" {
		t.Errorf("NewLockedError should set path context")
	}
}

func TestAsAppError(t *testing.T) {
	appError := &AppError{Type: ErrorTypeInvalidInput}

	result, ok := AsAppError(appError)
	if !ok || result != appError {
		t.Errorf("AsAppError should return the same AppError instance")
	}

	if _, ok := AsAppError(errors.New("regular error")); ok {
		t.Errorf("AsAppError should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
	if !IsErrorType(appError, ErrorTypeInvalidInput) || IsErrorType(appError, ErrorTypeStorage) {
		t.Errorf("IsErrorType should match only the error's own type")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Invalid input error", NewInvalidInputError("name", "", "name is required"), "invalid input for name: name is required"},
		{"Not found error", NewNotFoundError("task", "123"), "task not found: 123"},
		{"Storage error", NewStorageError("write", errors.New("quota")), "Your changes could not be saved. Please try again."},
		{"Timeout error", NewTimeoutError("write", "5s"), "The operation timed out. Please try again."},
		{"Locked error", NewLockedError("/data"), "data directory is in use by another process: /data"},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Not found error", NewNotFoundError("task", "123"), false},
		{"Invalid input error", NewInvalidInputError("date", "31/02", "format"), false},
		{"Storage error", NewStorageError("write", errors.New("quota")), true},
		{"Locked error", NewLockedError("/data"), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(NewLockedError("/data")) != "LOCKED" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}
