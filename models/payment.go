package models

import "time"

// CheckoutRequest starts a hosted checkout for a booking's deposit.
type CheckoutRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	OriginURL string `json:"origin_url" binding:"required"`
}

// CheckoutResponse carries the hosted checkout redirect target.
type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// PaymentTransaction tracks one checkout attempt for a booking.
type PaymentTransaction struct {
	ID            string            `bson:"id" json:"id"`
	SessionID     string            `bson:"session_id" json:"session_id"`
	BookingID     string            `bson:"booking_id" json:"booking_id"`
	Amount        float64           `bson:"amount" json:"amount"`
	Currency      string            `bson:"currency" json:"currency"`
	PaymentStatus string            `bson:"payment_status" json:"payment_status"` // "pending" or "paid"
	Metadata      map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `bson:"updated_at" json:"updated_at"`
}

// CheckoutStatus is the session state reported by the payment provider.
type CheckoutStatus struct {
	Status        string `json:"status"`         // "open", "complete" or "expired"
	PaymentStatus string `json:"payment_status"` // "paid" or "unpaid"
	AmountTotal   int64  `json:"amount_total"`   // Smallest currency unit
	Currency      string `json:"currency"`
}
