package checkout

import "errors"

var (
	ErrAuthRequired       = errors.New("authentication required")
	ErrNothingSelected    = errors.New("no offer selected")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// PaymentError wraps a gateway failure so the handler can distinguish a
// declined or failed charge from an internal fault.
type PaymentError struct {
	Err error
}

func (e *PaymentError) Error() string { return "payment failed: " + e.Err.Error() }

func (e *PaymentError) Unwrap() error { return e.Err }
