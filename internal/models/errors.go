package models

import "fmt"

// ErrorKind is a stable machine-readable rejection code.
type ErrorKind string

const (
	ErrPairUnavailable     ErrorKind = "PAIR_UNAVAILABLE"
	ErrBelowMinimum        ErrorKind = "BELOW_MINIMUM"
	ErrAboveMaximum        ErrorKind = "ABOVE_MAXIMUM"
	ErrInsufficientBalance ErrorKind = "INSUFFICIENT_BALANCE"
	ErrSubmissionConflict  ErrorKind = "SUBMISSION_CONFLICT"
	ErrNetworkError        ErrorKind = "NETWORK_ERROR"
	ErrBackendRejection    ErrorKind = "BACKEND_REJECTION"
	ErrUnknown             ErrorKind = "UNKNOWN"
)

// OrchestrationError carries a stable reason code together with a
// human-readable message. Validation and conflict errors are recoverable:
// the user adjusts input and retries, no state mutation has occurred.
type OrchestrationError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *OrchestrationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewOrchestrationError builds an error with a formatted message.
func NewOrchestrationError(kind ErrorKind, format string, args ...any) *OrchestrationError {
	return &OrchestrationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
