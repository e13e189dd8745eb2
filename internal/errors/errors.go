// Package errors provides the application error type shared by services,
// handlers and middleware. Services return *AppError values so the HTTP
// layer can pick a status code and a safe message without inspecting
// store-specific errors.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional field-level messages
// and an optional internal error.
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	StatusCode int               `json:"-"`
	Fields     map[string]string `json:"fields,omitempty"`
	Internal   error             `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so sentinel
// comparisons keep working after Wrap or WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Fields:     sentinel.Fields,
		Internal:   sentinel.Internal,
	}
}

// WithFields creates a new AppError carrying field-level messages.
func WithFields(sentinel *AppError, fields map[string]string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Fields:     fields,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Некорректный запрос", StatusCode: http.StatusBadRequest}
	ErrValidation     = &AppError{Code: "VALIDATION_FAILED", Message: "Исправьте ошибки в форме", StatusCode: http.StatusOK}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Страница не найдена", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Внутренняя ошибка сервера", StatusCode: http.StatusInternalServerError}
	ErrStorage        = &AppError{Code: "STORAGE_ERROR", Message: "Не удалось сохранить документ", StatusCode: http.StatusInternalServerError}
)

// Creditor errors.
var (
	ErrCreditorNotFound  = &AppError{Code: "CREDITOR_NOT_FOUND", Message: "Кредитор не найден", StatusCode: http.StatusNotFound}
	ErrCreditorProtected = &AppError{Code: "CREDITOR_PROTECTED", Message: "Кредитор указан как первоначальный в существующих договорах", StatusCode: http.StatusConflict}
)

// Agreement errors.
var (
	ErrAgreementNotFound = &AppError{Code: "AGREEMENT_NOT_FOUND", Message: "Договор не найден", StatusCode: http.StatusNotFound}
)

// Portfolio errors.
var (
	ErrPortfolioNotFound = &AppError{Code: "PORTFOLIO_NOT_FOUND", Message: "Портфель не найден", StatusCode: http.StatusNotFound}
)
