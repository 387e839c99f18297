package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound means the session id is unknown or expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrGatewayUnavailable means the payment gateway could not register
	// an order; the form must be resubmitted to retry.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrBookingNotRecorded is the severe case: the payment went through
	// but the booking document could not be written. The payment is not
	// reversed; the caller must surface an explicit contact-us message.
	ErrBookingNotRecorded = errors.New("payment received but booking was not recorded")
)

// ValidationError reports the form field that blocked the form step.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}
