package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidLocator indicates the repository locator could not be parsed
	ErrInvalidLocator = errors.New("invalid repository locator")

	// ErrOutputNameUnresolved indicates no output name was given and none
	// could be derived from the locator
	ErrOutputNameUnresolved = errors.New("output name could not be derived from locator")

	// ErrWriteFailed indicates writing the output artifact failed
	ErrWriteFailed = errors.New("write failed")
)

// FetchError represents a failed repository checkout
type FetchError struct {
	Locator string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch error for %s: %v", e.Locator, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(locator string, err error) *FetchError {
	return &FetchError{
		Locator: locator,
		Err:     err,
	}
}

// IsFetchError reports whether err is or wraps a FetchError
func IsFetchError(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
