// internal/pkg/apperror/apperror.go
package apperror

import (
	"fmt"
)

// ValidationError indicates malformed or missing input. It is returned
// before any write happens.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation creates a validation error for a field
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError indicates a referenced record is absent or belongs to
// another account.
type NotFoundError struct {
	Resource string `json:"resource"`
	ID       uint   `json:"id"`
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NewNotFound creates a not-found error
func NewNotFound(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// PersistenceError wraps a store failure. The underlying message is
// surfaced verbatim to the caller.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistence wraps a store error with the failing operation name
func NewPersistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// PartialFailureError reports a multi-step operation whose primary write
// succeeded but a later step failed. It is surfaced as a warning and the
// primary effect stands.
type PartialFailureError struct {
	Succeeded string
	Failed    string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s succeeded but %s failed: %v", e.Succeeded, e.Failed, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}

// NewPartialFailure records a partially applied operation
func NewPartialFailure(succeeded, failed string, err error) *PartialFailureError {
	return &PartialFailureError{Succeeded: succeeded, Failed: failed, Err: err}
}
