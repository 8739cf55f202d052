package payment

import "errors"

var (
	ErrPaymentNotFound = errors.New("salary payment not found")

	// ErrStoreUnavailable means the payment store could not be reached.
	// Callers computing reports treat this as an empty ledger, not a fault.
	ErrStoreUnavailable = errors.New("salary payment store unavailable")
)
