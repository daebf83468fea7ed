package bookingRepo

import (
	"context"
	"time"

	"hourlyride/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, date string) ([]models.Booking, error)
	// ListBlocking returns bookings on a date whose payment status still
	// reserves the vehicle ("paid" or "pending").
	ListBlocking(ctx context.Context, date string) ([]models.Booking, error)
	SetSessionID(ctx context.Context, id, sessionID string) error
	MarkPaidBySession(ctx context.Context, sessionID string) error
	// ExpireStale flips bookings still pending after the cutoff to "expired"
	// so they stop blocking availability.
	ExpireStale(ctx context.Context, cutoff time.Time) (int64, error)
}
