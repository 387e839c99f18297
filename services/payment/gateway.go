package payment

import (
	"context"
	"errors"
)

// ErrSignatureMismatch is returned when a payment confirmation carries a
// signature that does not match the order/payment pair.
var ErrSignatureMismatch = errors.New("payment signature verification failed")

// Gateway abstracts the hosted checkout provider. CreateOrder registers a
// payable order and returns its gateway identifier; VerifySignature checks
// the success callback against the shared secret.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) error
}
