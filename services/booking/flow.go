package booking

import (
	"errors"
	"time"

	"vishalaksha/models"
)

// Step identifies the booking flow step.
type Step string

const (
	StepForm         Step = "form"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// ErrInvalidTransition is returned when an event arrives for a step that
// cannot accept it.
var ErrInvalidTransition = errors.New("event not valid for current booking step")

// Session is the server-side state of one booking flow instance. The
// step-specific payload travels with the step tag: OrderID is set from the
// payment step onward, BookingID only on confirmation.
type Session struct {
	ID               string                  `json:"id"`
	Step             Step                    `json:"step"`
	Form             models.ConsultationForm `json:"form"`
	ConsultationRate int64                   `json:"consultationRate"`
	OrderID          string                  `json:"orderId,omitempty"`
	BookingID        string                  `json:"bookingId,omitempty"`
	CreatedAt        time.Time               `json:"createdAt"`
}

// Event drives a flow transition.
type Event interface{ isEvent() }

// SubmitForm moves Form to Payment once a gateway order exists for the
// captured field values.
type SubmitForm struct {
	Form    models.ConsultationForm
	OrderID string
}

// PaymentSucceeded moves Payment to Confirmation after the booking record
// has been written.
type PaymentSucceeded struct {
	BookingID string
}

// PaymentDismissed records a closed checkout modal; the session stays on
// Payment and is retryable.
type PaymentDismissed struct{}

// Reset returns the session to an empty Form from any step.
type Reset struct{}

func (SubmitForm) isEvent()       {}
func (PaymentSucceeded) isEvent() {}
func (PaymentDismissed) isEvent() {}
func (Reset) isEvent()            {}

// Transition is a pure function from (session, event) to the next session
// state. It never touches external services.
func Transition(s Session, ev Event) (Session, error) {
	switch ev := ev.(type) {
	case SubmitForm:
		if s.Step != StepForm {
			return s, ErrInvalidTransition
		}
		s.Step = StepPayment
		s.Form = ev.Form
		s.OrderID = ev.OrderID
		return s, nil
	case PaymentSucceeded:
		if s.Step != StepPayment {
			return s, ErrInvalidTransition
		}
		s.Step = StepConfirmation
		s.BookingID = ev.BookingID
		return s, nil
	case PaymentDismissed:
		if s.Step != StepPayment {
			return s, ErrInvalidTransition
		}
		return s, nil
	case Reset:
		return Session{
			ID:               s.ID,
			Step:             StepForm,
			ConsultationRate: s.ConsultationRate,
			CreatedAt:        s.CreatedAt,
		}, nil
	default:
		return s, ErrInvalidTransition
	}
}
