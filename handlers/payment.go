package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hourlyride/models"
	"hourlyride/services/payment"
)

// PaymentHandler exposes checkout and payment status endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
	Logger  *zap.Logger
}

func NewPaymentHandler(service payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: service, Logger: logger}
}

// CreateCheckout handles POST /api/payments/checkout.
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload", "details": err.Error()})
		return
	}

	checkout, err := h.Service.CreateCheckout(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, payment.ErrAlreadyPaid):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("checkout creation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create checkout session"})
		}
		return
	}

	c.JSON(http.StatusOK, checkout)
}

// GetStatus handles GET /api/payments/status/:session_id.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	status, err := h.Service.Status(c.Request.Context(), sessionID)
	if err != nil {
		h.Logger.Error("payment status lookup failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch payment status"})
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetTransaction handles GET /api/payments/transactions/:session_id.
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	txn, err := h.Service.Transaction(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, payment.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("transaction lookup failed", zap.String("session", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transaction"})
		return
	}
	c.JSON(http.StatusOK, txn)
}

// StripeWebhook handles POST /api/webhook/stripe.
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read webhook body"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if err := h.Service.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		h.Logger.Warn("webhook rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
