package payment

import (
	"context"

	"hourlyride/models"
)

// CheckoutParams describes a hosted checkout session to create.
type CheckoutParams struct {
	AmountUSD   float64
	Description string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// WebhookEvent is the subset of a provider webhook the service acts on.
type WebhookEvent struct {
	SessionID string
	Paid      bool
}

// CheckoutGateway abstracts the hosted checkout provider so handlers and
// tests can run against a fake.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, params CheckoutParams) (*models.CheckoutResponse, error)
	SessionStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error)
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}
