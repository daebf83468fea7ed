package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"

	"hourlyride/models"
)

// StripeGateway implements CheckoutGateway against Stripe Checkout.
type StripeGateway struct {
	WebhookSecret string
}

// NewStripeGateway returns a gateway using the globally configured Stripe key.
func NewStripeGateway(webhookSecret string) *StripeGateway {
	return &StripeGateway{WebhookSecret: webhookSecret}
}

func (g *StripeGateway) CreateSession(ctx context.Context, params CheckoutParams) (*models.CheckoutResponse, error) {
	if params.AmountUSD <= 0 {
		return nil, errors.New("checkout amount must be positive")
	}

	sessionParams := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.Description),
					},
					// Stripe amounts are in cents.
					UnitAmount: stripe.Int64(int64(math.Round(params.AmountUSD * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	sessionParams.Context = ctx
	for key, value := range params.Metadata {
		sessionParams.AddMetadata(key, value)
	}

	s, err := session.New(sessionParams)
	if err != nil {
		return nil, fmt.Errorf("stripe session create failed: %w", err)
	}

	return &models.CheckoutResponse{URL: s.URL, SessionID: s.ID}, nil
}

func (g *StripeGateway) SessionStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe session lookup failed: %w", err)
	}

	return &models.CheckoutStatus{
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
	}, nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.WebhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session event: %w", err)
		}
		return &WebhookEvent{
			SessionID: s.ID,
			Paid:      s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		}, nil
	default:
		// Events we do not act on are acknowledged without a session.
		return &WebhookEvent{}, nil
	}
}
