package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vishalaksha/models"
	"vishalaksha/services/booking"
	"vishalaksha/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	startSess     *booking.Session
	startCheckout *models.CheckoutOptions
	startErr      error
	confirmSess   *booking.Session
	confirmErr    error
	dismissSess   *booking.Session
	dismissErr    error
	resetErr      error
}

func (s *stubBookingService) StartSession(ctx context.Context, form models.ConsultationForm) (*booking.Session, *models.CheckoutOptions, error) {
	return s.startSess, s.startCheckout, s.startErr
}

func (s *stubBookingService) ConfirmPayment(ctx context.Context, sessionID string, conf models.PaymentConfirmation) (*booking.Session, error) {
	return s.confirmSess, s.confirmErr
}

func (s *stubBookingService) DismissPayment(ctx context.Context, sessionID string) (*booking.Session, error) {
	return s.dismissSess, s.dismissErr
}

func (s *stubBookingService) ResetSession(ctx context.Context, sessionID string) error {
	return s.resetErr
}

func setupBookingRouter(t *testing.T, svc booking.Service) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	api := r.Group("/api/consultation")
	{
		api.POST("/session", h.StartSessionHandler)
		api.POST("/session/:sessionID/confirm", h.ConfirmPaymentHandler)
		api.POST("/session/:sessionID/dismiss", h.DismissPaymentHandler)
		api.DELETE("/session/:sessionID", h.ResetSessionHandler)
	}
	return r
}

func postJSON(t *testing.T, r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestStartSessionHandler_Success(t *testing.T) {
	svc := &stubBookingService{
		startSess:     &booking.Session{ID: "s1", Step: booking.StepPayment, OrderID: "order_1"},
		startCheckout: &models.CheckoutOptions{Key: "rzp_test_key", Amount: 1100000, Currency: "INR", OrderID: "order_1"},
	}
	r := setupBookingRouter(t, svc)

	w := postJSON(t, r, "/api/consultation/session", models.ConsultationForm{
		Name: "Asha", Mobile: "9876543210", Email: "a@b.c", Address: "Pune", Issue: "Health Concerns",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		SessionID string                 `json:"sessionId"`
		Step      string                 `json:"step"`
		Checkout  models.CheckoutOptions `json:"checkout"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.SessionID)
	assert.Equal(t, "payment", resp.Step)
	assert.Equal(t, int64(1100000), resp.Checkout.Amount)
}

func TestStartSessionHandler_ValidationError(t *testing.T) {
	svc := &stubBookingService{startErr: &booking.ValidationError{Field: "customIssue", Reason: "is required when the issue is 'Other'"}}
	r := setupBookingRouter(t, svc)

	w := postJSON(t, r, "/api/consultation/session", models.ConsultationForm{Issue: models.IssueOther})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartSessionHandler_GatewayDown(t *testing.T) {
	svc := &stubBookingService{startErr: booking.ErrGatewayUnavailable}
	r := setupBookingRouter(t, svc)

	w := postJSON(t, r, "/api/consultation/session", models.ConsultationForm{
		Name: "Asha", Mobile: "9876543210", Email: "a@b.c", Address: "Pune", Issue: "Health Concerns",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestStartSessionHandler_BadJSON(t *testing.T) {
	r := setupBookingRouter(t, &stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/consultation/session", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmPaymentHandler_Success(t *testing.T) {
	svc := &stubBookingService{
		confirmSess: &booking.Session{ID: "s1", Step: booking.StepConfirmation, BookingID: "b1"},
	}
	r := setupBookingRouter(t, svc)

	w := postJSON(t, r, "/api/consultation/session/s1/confirm", models.PaymentConfirmation{
		PaymentID: "P1", OrderID: "order_1", Signature: "sig",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Booking Confirmed!")
	assert.Contains(t, w.Body.String(), "b1")
}

func TestConfirmPaymentHandler_SaveFailure(t *testing.T) {
	svc := &stubBookingService{confirmErr: booking.ErrBookingNotRecorded}
	r := setupBookingRouter(t, svc)

	w := postJSON(t, r, "/api/consultation/session/s1/confirm", models.PaymentConfirmation{
		PaymentID: "P1", OrderID: "order_1", Signature: "sig",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Please contact us")
}

func TestConfirmPaymentHandler_UnknownSession(t *testing.T) {
	svc := &stubBookingService{confirmErr: booking.ErrSessionNotFound}
	r := setupBookingRouter(t, svc)

	w := postJSON(t, r, "/api/consultation/session/missing/confirm", models.PaymentConfirmation{
		PaymentID: "P1", OrderID: "order_1", Signature: "sig",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfirmPaymentHandler_BadSignature(t *testing.T) {
	svc := &stubBookingService{confirmErr: payment.ErrSignatureMismatch}
	r := setupBookingRouter(t, svc)

	w := postJSON(t, r, "/api/consultation/session/s1/confirm", models.PaymentConfirmation{
		PaymentID: "P1", OrderID: "order_1", Signature: "bogus",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDismissPaymentHandler(t *testing.T) {
	svc := &stubBookingService{dismissSess: &booking.Session{ID: "s1", Step: booking.StepPayment}}
	r := setupBookingRouter(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/consultation/session/s1/dismiss", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payment Cancelled")
}

func TestResetSessionHandler(t *testing.T) {
	r := setupBookingRouter(t, &stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/consultation/session/s1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
