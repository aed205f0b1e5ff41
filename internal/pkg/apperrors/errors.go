package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for conditions that carry no extra payload
var (
	ErrNotFound                        = errors.New("resource not found")
	ErrConflictingDefaultPaymentMethod = errors.New("cannot remove the default payment method while other methods exist")
	// ErrConcurrentUpdate means another caller advanced the participation
	// between read and write; the caller should re-read and retry.
	ErrConcurrentUpdate = errors.New("participation was modified concurrently")
)

// InvalidStateTransitionError is returned when a lifecycle operation is
// invoked outside its valid phase. The participation is left untouched.
type InvalidStateTransitionError struct {
	Operation string
	Phase     string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("operation %s is not valid in phase %s", e.Operation, e.Phase)
}

// NewInvalidStateTransition builds an InvalidStateTransitionError
func NewInvalidStateTransition(operation, phase string) error {
	return &InvalidStateTransitionError{Operation: operation, Phase: phase}
}

// IsInvalidStateTransition reports whether err is an invalid-state error
func IsInvalidStateTransition(err error) bool {
	var target *InvalidStateTransitionError
	return errors.As(err, &target)
}

// PreconditionFailedError is returned when an operation is invoked in the
// right phase but its guard fails (missing terms, unmet requirements, empty
// feedback, rating out of range).
type PreconditionFailedError struct {
	Reason              string
	MissingRequirements []string
}

func (e *PreconditionFailedError) Error() string {
	if len(e.MissingRequirements) > 0 {
		return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.MissingRequirements, ", "))
	}
	return e.Reason
}

// NewPreconditionFailed builds a PreconditionFailedError without a
// requirement list
func NewPreconditionFailed(reason string) error {
	return &PreconditionFailedError{Reason: reason}
}

// NewUnmetRequirements builds a PreconditionFailedError listing the
// campaign requirements still unmet
func NewUnmetRequirements(missing []string) error {
	return &PreconditionFailedError{Reason: "unmet campaign requirements", MissingRequirements: missing}
}

// IsPreconditionFailed reports whether err is a precondition error
func IsPreconditionFailed(err error) bool {
	var target *PreconditionFailedError
	return errors.As(err, &target)
}

// PaymentFailedError is returned when the charging provider declines or is
// unreachable. Retryable: the participation stays in PAYMENT phase.
type PaymentFailedError struct {
	Reason string
	Err    error
}

func (e *PaymentFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("payment failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("payment failed: %s", e.Reason)
}

func (e *PaymentFailedError) Unwrap() error { return e.Err }

// NewPaymentFailed builds a PaymentFailedError
func NewPaymentFailed(reason string, err error) error {
	return &PaymentFailedError{Reason: reason, Err: err}
}

// IsPaymentFailed reports whether err is a payment failure
func IsPaymentFailed(err error) bool {
	var target *PaymentFailedError
	return errors.As(err, &target)
}
