package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "vishalaksha/database/repository/booking"
	"vishalaksha/models"
	"vishalaksha/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutConfig carries the fixed parameters of the hosted checkout
// widget: the public key, the consultation rate in rupees, and the display
// branding.
type CheckoutConfig struct {
	KeyID       string
	Rate        int64
	Currency    string
	DisplayName string
	Description string
	Image       string
	ThemeColor  string
}

// Service runs the consultation booking flow across its three steps.
type Service interface {
	StartSession(ctx context.Context, form models.ConsultationForm) (*Session, *models.CheckoutOptions, error)
	ConfirmPayment(ctx context.Context, sessionID string, conf models.PaymentConfirmation) (*Session, error)
	DismissPayment(ctx context.Context, sessionID string) (*Session, error)
	ResetSession(ctx context.Context, sessionID string) error
}

// DefaultBookingService wires the flow to the session store, the payment
// gateway and the booking repository.
type DefaultBookingService struct {
	Repo     bookingRepo.Repository
	Sessions SessionStore
	Gateway  payment.Gateway
	Checkout CheckoutConfig
	Logger   *zap.Logger

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) currency() string {
	if s.Checkout.Currency == "" {
		return "INR"
	}
	return s.Checkout.Currency
}

// StartSession validates the form, registers a gateway order and moves a
// fresh session to the payment step. The returned checkout options are
// handed verbatim to the hosted widget.
func (s *DefaultBookingService) StartSession(ctx context.Context, form models.ConsultationForm) (*Session, *models.CheckoutOptions, error) {
	if err := ValidateForm(form); err != nil {
		return nil, nil, err
	}

	sess := Session{
		ID:               uuid.New().String(),
		Step:             StepForm,
		ConsultationRate: s.Checkout.Rate,
		CreatedAt:        s.now(),
	}

	orderID, err := s.Gateway.CreateOrder(ctx, s.Checkout.Rate*100, s.currency(), sess.ID)
	if err != nil {
		s.Logger.Error("failed to create payment order", zap.Error(err))
		return nil, nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	next, err := Transition(sess, SubmitForm{Form: form, OrderID: orderID})
	if err != nil {
		return nil, nil, err
	}
	if err := s.Sessions.Save(ctx, &next); err != nil {
		return nil, nil, err
	}

	return &next, s.checkoutOptions(&next), nil
}

// ConfirmPayment handles the checkout success callback. The booking
// document is written if and only if the signature verifies; a document
// write failure keeps the session on the payment step.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, sessionID string, conf models.PaymentConfirmation) (*Session, error) {
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Step != StepPayment {
		return nil, ErrInvalidTransition
	}

	if conf.OrderID != sess.OrderID {
		return nil, payment.ErrSignatureMismatch
	}
	if err := s.Gateway.VerifySignature(conf.OrderID, conf.PaymentID, conf.Signature); err != nil {
		return nil, err
	}

	booking := models.ConsultationBooking{
		ID:               uuid.New().String(),
		Name:             sess.Form.Name,
		Mobile:           sess.Form.Mobile,
		Email:            sess.Form.Email,
		Address:          sess.Form.Address,
		Issue:            sess.Form.Issue,
		CustomIssue:      sess.Form.CustomIssue,
		ConsultationRate: sess.ConsultationRate,
		PaymentID:        conf.PaymentID,
		BookingDate:      s.now(),
		Status:           models.BookingStatusConfirmed,
	}

	if err := s.Repo.Create(&booking); err != nil {
		s.Logger.Error("booking save failed after successful payment",
			zap.String("sessionId", sess.ID),
			zap.String("paymentId", conf.PaymentID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrBookingNotRecorded, err)
	}

	next, err := Transition(*sess, PaymentSucceeded{BookingID: booking.ID})
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.Save(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// DismissPayment records a closed checkout modal; the session stays on the
// payment step and can be retried.
func (s *DefaultBookingService) DismissPayment(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	next, err := Transition(*sess, PaymentDismissed{})
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.Save(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// ResetSession discards the session entirely, returning the visitor to a
// blank form.
func (s *DefaultBookingService) ResetSession(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

func (s *DefaultBookingService) checkoutOptions(sess *Session) *models.CheckoutOptions {
	return &models.CheckoutOptions{
		Key:         s.Checkout.KeyID,
		Amount:      sess.ConsultationRate * 100,
		Currency:    s.currency(),
		Name:        s.Checkout.DisplayName,
		Description: s.Checkout.Description,
		Image:       s.Checkout.Image,
		OrderID:     sess.OrderID,
		Prefill: models.CheckoutPrefill{
			Name:    sess.Form.Name,
			Email:   sess.Form.Email,
			Contact: sess.Form.Mobile,
		},
		Theme: models.CheckoutTheme{Color: s.Checkout.ThemeColor},
	}
}
