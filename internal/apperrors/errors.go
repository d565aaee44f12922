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

// ErrConflict indicates that the operation violates the resource's current
// state, e.g. approving a journal twice or posting a beginning balance twice.
var ErrConflict = errors.New("operation conflicts with resource state")

// ErrForbidden indicates the acting user lacks the required role for the church.
var ErrForbidden = errors.New("user is not permitted to perform this action")

// ErrPeriodLocked indicates a write targets a date inside a locked fiscal
// period. It is a calendar-policy rejection, distinct from ErrProtected which
// is tied to the resource's own lifecycle.
var ErrPeriodLocked = errors.New("fiscal period is locked")

// ErrProtected indicates the resource's lifecycle or usage forbids the
// operation, e.g. editing an approved journal or deleting a referenced account.
var ErrProtected = errors.New("resource is protected")

// ErrInternal indicates an unexpected failure inside a service or repository.
var ErrInternal = errors.New("internal error")

// AppError carries a status code alongside the wrapped cause. Repositories
// use it to report infrastructure failures without leaking driver details.
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

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that unwraps to ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
