// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
)

const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeRateLimited      = "RATE_LIMITED"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError is an error that knows how it should be rendered to a client.
type AppError struct {
	Code    string
	Message string
	Status  int
	Details map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

func BadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, message)
}

func ValidationError(details map[string]string) *AppError {
	appErr := NewAppError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"request validation failed",
	)
	appErr.Details = details
	return appErr
}

func NotFoundError(resource string) *AppError {
	return NewAppError(
		http.StatusNotFound,
		CodeNotFound,
		resource+" not found",
	)
}

func ConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message)
}

func InternalError(err error) *AppError {
	appErr := NewAppError(
		http.StatusInternalServerError,
		CodeInternal,
		"internal server error",
	)
	appErr.Err = err
	return appErr
}
