package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses and job exit codes.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError by code, so errors.Is(err, ErrProviderNotFound())
// holds for any provider-not-found error regardless of what it wraps.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Provider Registry (PRV) ----

func ErrProviderNotFound() *AppError {
	return New("PRV_001", "Provider not found", http.StatusNotFound)
}

// ProviderNotFound wraps the storage-level cause of a missing provider.
func ProviderNotFound(err error) *AppError {
	return Wrap("PRV_001", "Provider not found", http.StatusNotFound, err)
}

func ErrInvalidProviderID() *AppError {
	return New("PRV_002", "Invalid provider id", http.StatusBadRequest)
}

// ---- Configuration (CFG) ----

// ErrProviderNotSupported is returned when no connection tester is registered
// for the provider type. It is never retryable. Message holds the bare
// "Provider type X not supported" text; Error() prefixes it with the code.
func ErrProviderNotSupported(providerType string) *AppError {
	return New("CFG_001", fmt.Sprintf("Provider type %s not supported", providerType), http.StatusUnprocessableEntity)
}

// ---- Connection checks (CHK) ----

func ErrCheckInProgress() *AppError {
	return New("CHK_001", "Connection check already in progress", http.StatusConflict)
}

// ---- Rate limiting (RTE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RTE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockFailure(err error) *AppError {
	return Wrap("SYS_002", "Lock store failure", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

