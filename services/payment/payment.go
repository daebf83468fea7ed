package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "hourlyride/database/repository/booking"
	paymentRepo "hourlyride/database/repository/payment"
	"hourlyride/models"
)

var (
	// ErrBookingNotFound is returned when a checkout references an unknown booking.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrAlreadyPaid is returned when a checkout is requested for a paid booking.
	ErrAlreadyPaid = errors.New("booking already paid")
	// ErrTransactionNotFound is returned when a session has no recorded transaction.
	ErrTransactionNotFound = errors.New("payment transaction not found")
)

// PaymentService coordinates hosted checkout sessions and their settlement.
type PaymentService interface {
	CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error)
	Status(ctx context.Context, sessionID string) (*models.CheckoutStatus, error)
	Transaction(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Gateway  CheckoutGateway
	Bookings bookingRepo.BookingRepository
	Payments paymentRepo.PaymentRepository
	Logger   *zap.Logger
}

// CreateCheckout opens a hosted checkout session for a booking's deposit,
// records the pending transaction and stamps the session onto the booking.
func (s *DefaultPaymentService) CreateCheckout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	booking, err := s.Bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	if booking.PaymentStatus == "paid" {
		return nil, ErrAlreadyPaid
	}

	origin := strings.TrimRight(req.OriginURL, "/")
	checkout, err := s.Gateway.CreateSession(ctx, CheckoutParams{
		AmountUSD:   booking.DepositAmount,
		Description: "Chauffeur service deposit",
		SuccessURL:  origin + "/booking-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/booking",
		Metadata: map[string]string{
			"booking_id":     booking.ID,
			"customer_email": booking.Email,
			"customer_name":  booking.FullName,
		},
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := &models.PaymentTransaction{
		ID:            uuid.New().String(),
		SessionID:     checkout.SessionID,
		BookingID:     booking.ID,
		Amount:        booking.DepositAmount,
		Currency:      "usd",
		PaymentStatus: "pending",
		Metadata: map[string]string{
			"booking_id":     booking.ID,
			"customer_email": booking.Email,
			"customer_name":  booking.FullName,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Payments.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record payment transaction: %w", err)
	}
	if err := s.Bookings.SetSessionID(ctx, booking.ID, checkout.SessionID); err != nil {
		return nil, fmt.Errorf("failed to link session to booking: %w", err)
	}

	s.Logger.Info("checkout session created",
		zap.String("booking", booking.ID),
		zap.String("session", checkout.SessionID),
		zap.Float64("deposit", booking.DepositAmount),
	)
	return checkout, nil
}

// Status reports the provider's view of a session, settling the booking the
// first time the session shows up as paid.
func (s *DefaultPaymentService) Status(ctx context.Context, sessionID string) (*models.CheckoutStatus, error) {
	status, err := s.Gateway.SessionStatus(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if status.PaymentStatus == "paid" {
		if err := s.settle(ctx, sessionID); err != nil {
			return nil, err
		}
	}
	return status, nil
}

// Transaction returns the stored record for a session, so the success page
// can show the receipt without another provider round trip.
func (s *DefaultPaymentService) Transaction(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	txn, err := s.Payments.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to load payment transaction: %w", err)
	}
	return txn, nil
}

// HandleWebhook verifies and applies a provider webhook.
func (s *DefaultPaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.Gateway.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}
	if event.SessionID == "" || !event.Paid {
		return nil
	}
	return s.settle(ctx, event.SessionID)
}

// settle marks the transaction and its booking paid exactly once.
func (s *DefaultPaymentService) settle(ctx context.Context, sessionID string) error {
	updated, err := s.Payments.MarkPaid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Status polled for a session we never recorded; nothing to settle.
			s.Logger.Warn("paid session has no transaction record", zap.String("session", sessionID))
			return nil
		}
		return fmt.Errorf("failed to mark transaction paid: %w", err)
	}
	if !updated {
		return nil
	}

	if err := s.Bookings.MarkPaidBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to mark booking paid: %w", err)
	}
	s.Logger.Info("payment settled", zap.String("session", sessionID))
	return nil
}
