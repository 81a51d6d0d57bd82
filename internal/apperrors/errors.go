package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrReconciliation is the sentinel all ReconciliationError values wrap,
// so callers can match with errors.Is.
var ErrReconciliation = errors.New("reconciliation failed")

// ReconciliationError reports a transaction whose net and tax amounts do
// not reproduce the gross amount at cent precision. It aborts any
// compliance-grade export that encounters it.
type ReconciliationError struct {
	ReferenceID string
	Sector      string
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("transaction %s (%s) does not balance: net + tax != gross", e.ReferenceID, e.Sector)
}

func (e *ReconciliationError) Unwrap() error {
	return ErrReconciliation
}

// PaymentModeError reports a transaction destined for a compliance export
// that carries no payment mode. External accounting systems need a concrete
// payment account mapping, so this is never silently defaulted.
type PaymentModeError struct {
	ReferenceID string
}

func (e *PaymentModeError) Error() string {
	return fmt.Sprintf("transaction %s has no payment mode", e.ReferenceID)
}

func (e *PaymentModeError) Unwrap() error {
	return ErrValidation
}
