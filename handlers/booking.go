package handlers

import (
	"errors"
	"net/http"

	"vishalaksha/models"
	"vishalaksha/services/booking"
	"vishalaksha/services/payment"
	"vishalaksha/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the consultation booking flow over HTTP.
type BookingHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// StartSessionHandler validates the form step and, on success, returns the
// session id plus the checkout widget options for the payment step.
func (h *BookingHandler) StartSessionHandler(c *gin.Context) {
	var form models.ConsultationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, checkout, err := h.Service.StartSession(c.Request.Context(), form)
	if err != nil {
		var vErr *booking.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, "missing required details", vErr.Error())
		case errors.Is(err, booking.ErrGatewayUnavailable):
			utils.JSONError(c, http.StatusBadGateway, "Payment Failed",
				"Please try again or contact us directly.")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to start booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sessionId": sess.ID,
		"step":      sess.Step,
		"checkout":  checkout,
	})
}

// ConfirmPaymentHandler handles the checkout success callback.
func (h *BookingHandler) ConfirmPaymentHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var conf models.PaymentConfirmation
	if err := c.ShouldBindJSON(&conf); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Service.ConfirmPayment(c.Request.Context(), sessionID, conf)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking session not found", err.Error())
		case errors.Is(err, booking.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "booking is not awaiting payment", err.Error())
		case errors.Is(err, payment.ErrSignatureMismatch):
			utils.JSONError(c, http.StatusBadRequest, "payment verification failed", err.Error())
		case errors.Is(err, booking.ErrBookingNotRecorded):
			// Money has moved but no record exists; never swallow this.
			utils.JSONError(c, http.StatusBadGateway, "Booking Error",
				"Payment successful but booking save failed. Please contact us.")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to confirm booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sess.ID,
		"step":      sess.Step,
		"bookingId": sess.BookingID,
		"message":   "Booking Confirmed! Your consultation has been booked successfully. We'll contact you soon.",
	})
}

// DismissPaymentHandler records a closed checkout modal; the session stays
// retryable on the payment step.
func (h *BookingHandler) DismissPaymentHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")

	sess, err := h.Service.DismissPayment(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking session not found", err.Error())
		case errors.Is(err, booking.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "booking is not awaiting payment", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to record dismissal", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sess.ID,
		"step":      sess.Step,
		"message":   "Payment Cancelled. You can try again when ready.",
	})
}

// ResetSessionHandler discards the session: back to a blank form.
func (h *BookingHandler) ResetSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.ResetSession(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset booking session", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
