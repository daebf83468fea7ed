package paymentRepo

import (
	"context"

	"hourlyride/models"
)

// PaymentRepository defines the interface for payment transaction data access.
type PaymentRepository interface {
	Create(ctx context.Context, txn *models.PaymentTransaction) error
	GetBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
	// MarkPaid flips a pending transaction to "paid". Returns false when the
	// transaction was already paid, so callers can skip duplicate processing.
	MarkPaid(ctx context.Context, sessionID string) (bool, error)
}
