package testutil

import (
	"errors"
	"testing"

	apperrors "dealbook/internal/errors"
)

// AppError unwraps err into an *AppError or fails the test.
func AppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	switch {
	case err == nil:
		t.Fatal("expected an error, got nil")
	case !errors.As(err, &appErr):
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr
}

// AssertAppError checks the code of an *AppError.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()

	if got := AppError(t, err); got.Code != code {
		t.Errorf("error code = %q, want %q (%s)", got.Code, code, got.Message)
	}
}

// AssertFieldErrors checks that err is a validation error carrying a
// message for each of fields, and returns all field messages.
func AssertFieldErrors(t *testing.T, err error, fields ...string) map[string]string {
	t.Helper()

	appErr := AppError(t, err)
	if appErr.Code != apperrors.ErrValidation.Code {
		t.Fatalf("error code = %q, want %q", appErr.Code, apperrors.ErrValidation.Code)
	}
	for _, field := range fields {
		if _, ok := appErr.Fields[field]; !ok {
			t.Errorf("no message for %s in %v", field, appErr.Fields)
		}
	}
	return appErr.Fields
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
