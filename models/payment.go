package models

// CheckoutOptions is the configuration handed to the hosted checkout
// widget on the payment step. Amount is in minor currency units (paise).
type CheckoutOptions struct {
	Key         string          `json:"key"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	OrderID     string          `json:"order_id"`
	Prefill     CheckoutPrefill `json:"prefill"`
	Theme       CheckoutTheme   `json:"theme"`
}

// CheckoutPrefill pre-populates the checkout contact fields.
type CheckoutPrefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// CheckoutTheme styles the checkout modal.
type CheckoutTheme struct {
	Color string `json:"color"`
}

// PaymentConfirmation is the payload the checkout widget posts back after
// a successful payment. Field names follow the gateway's callback contract.
type PaymentConfirmation struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}
