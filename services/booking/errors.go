package booking

import "fmt"

// ValidationError reports malformed or missing required fields. It is always
// raised before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validationError: %s", e.Message)
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a unique-identifier collision or a duplicate request.
// The generating call is abandoned, never retried with a fallback identifier.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflictError: %s", e.Message)
}

func NewConflictError(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// PreconditionError reports a transition not allowed from the current state,
// an edit attempted on a frozen booking, or archiving an active booking. The
// specific unmet condition is always carried in the message.
type PreconditionError struct {
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("preconditionError: %s", e.Message)
}

func NewPreconditionError(format string, args ...interface{}) error {
	return &PreconditionError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing primary record.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("notFoundError: %s", e.Message)
}

func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// PartialApplicationError reports a failure mid-way through the reassignment
// write set. It is surfaced distinctly because an operator must verify
// vehicle/booking consistency by hand.
type PartialApplicationError struct {
	Message string
	Err     error
}

func (e *PartialApplicationError) Error() string {
	return fmt.Sprintf("partialApplicationError: %s: %v", e.Message, e.Err)
}

func (e *PartialApplicationError) Unwrap() error {
	return e.Err
}
