package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConstraint indicates the storage engine rejected a write (foreign key, unique id, check).
var ErrConstraint = errors.New("constraint violation")

// ErrInsufficientStock indicates a stock movement would take a product below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// AppError carries a message for the caller together with the sentinel it belongs to
// and the underlying cause.
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is reports whether target is the sentinel this error was created with.
func (e *AppError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a message. kind may be nil for plain internal failures.
func NewAppError(kind error, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NewValidationError creates an AppError matching ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message}
}

// NewNotFoundError creates an AppError matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: message}
}

// NewConstraintError creates an AppError matching ErrConstraint.
func NewConstraintError(message string, err error) *AppError {
	return &AppError{Kind: ErrConstraint, Message: message, Err: err}
}

// ItemError pins a failure to one line item of a sale or purchase.
type ItemError struct {
	Index     int
	ProductID string
	Err       error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d (product %q): %v", e.Index, e.ProductID, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// AsItemError returns the ItemError in err's chain, if any.
func AsItemError(err error) (*ItemError, bool) {
	var itemErr *ItemError
	if errors.As(err, &itemErr) {
		return itemErr, true
	}
	return nil, false
}
