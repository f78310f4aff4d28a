package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the requested operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current state")

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrImbalance indicates a generated journal does not balance debits against credits.
// This points at a handler bug rather than bad input.
var ErrImbalance = errors.New("journal debits and credits do not balance")

// ErrAccountResolution indicates a journal line's account code could not be
// resolved after default-account substitution.
var ErrAccountResolution = errors.New("account code could not be resolved")

// ErrImmutableEvent indicates an attempt to mutate the payload or type of an
// accounting event after it was persisted.
var ErrImmutableEvent = errors.New("accounting event payload is immutable")

// ErrInvalidTransition indicates a status change the event lifecycle does not permit.
var ErrInvalidTransition = errors.New("invalid status transition")

// AppError wraps a lower-level error with an application status code and message.
type AppError struct {
	Code    int
	Message string
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

// NewAppError creates an AppError with the given code, message and wrapped cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
