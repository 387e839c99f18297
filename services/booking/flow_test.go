package booking

import (
	"testing"
	"time"

	"vishalaksha/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleForm() models.ConsultationForm {
	return models.ConsultationForm{
		Name:    "Asha Verma",
		Mobile:  "9876543210",
		Email:   "asha@example.com",
		Address: "12 MG Road, Pune",
		Issue:   "Financial Problems",
	}
}

func TestTransition_SubmitForm(t *testing.T) {
	s := Session{ID: "s1", Step: StepForm, ConsultationRate: 11000}

	next, err := Transition(s, SubmitForm{Form: sampleForm(), OrderID: "order_1"})

	require.NoError(t, err)
	assert.Equal(t, StepPayment, next.Step)
	assert.Equal(t, "order_1", next.OrderID)
	assert.Equal(t, sampleForm(), next.Form)
}

func TestTransition_SubmitForm_WrongStep(t *testing.T) {
	s := Session{ID: "s1", Step: StepPayment}

	_, err := Transition(s, SubmitForm{Form: sampleForm(), OrderID: "order_1"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_PaymentSucceeded(t *testing.T) {
	s := Session{ID: "s1", Step: StepPayment, OrderID: "order_1"}

	next, err := Transition(s, PaymentSucceeded{BookingID: "b1"})

	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, next.Step)
	assert.Equal(t, "b1", next.BookingID)
}

func TestTransition_PaymentSucceeded_FromForm(t *testing.T) {
	s := Session{ID: "s1", Step: StepForm}

	_, err := Transition(s, PaymentSucceeded{BookingID: "b1"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_PaymentDismissed_StaysOnPayment(t *testing.T) {
	s := Session{ID: "s1", Step: StepPayment, OrderID: "order_1", Form: sampleForm()}

	next, err := Transition(s, PaymentDismissed{})

	require.NoError(t, err)
	assert.Equal(t, s, next)
}

func TestTransition_Reset_RoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	initial := Session{ID: "s1", Step: StepForm, ConsultationRate: 11000, CreatedAt: created}

	afterSubmit, err := Transition(initial, SubmitForm{Form: sampleForm(), OrderID: "order_1"})
	require.NoError(t, err)
	afterConfirm, err := Transition(afterSubmit, PaymentSucceeded{BookingID: "b1"})
	require.NoError(t, err)

	reset, err := Transition(afterConfirm, Reset{})
	require.NoError(t, err)

	assert.Equal(t, initial, reset)
	assert.Equal(t, models.ConsultationForm{}, reset.Form)
}
