package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signFor(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "secret123")

	sig := signFor("secret123", "order_1", "pay_1")

	assert.NoError(t, g.VerifySignature("order_1", "pay_1", sig))
}

func TestVerifySignature_Mismatch(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "secret123")

	sig := signFor("wrong-secret", "order_1", "pay_1")

	assert.ErrorIs(t, g.VerifySignature("order_1", "pay_1", sig), ErrSignatureMismatch)
	assert.ErrorIs(t, g.VerifySignature("order_1", "pay_1", "garbage"), ErrSignatureMismatch)
}
