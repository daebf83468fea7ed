package booking

import (
	"context"

	"hourlyride/models"
)

// BookingService defines the operations of the reservation engine.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	ListBookings(ctx context.Context, date string) ([]models.Booking, error)
	CheckAvailability(ctx context.Context, date, startTime, endTime string) (models.AvailabilityResult, error)
}
