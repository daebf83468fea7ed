package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "hourlyride/database/repository/booking"
	"hourlyride/models"
)

// ErrBelowMinimum is returned when a booking is submitted with a billing
// duration under the minimum.
var ErrBelowMinimum = fmt.Errorf("minimum booking duration is %g hours", MinHours)

// DefaultBookingService implements BookingService on top of the booking repository.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

// CreateBooking validates and stores a new reservation in "pending" state.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	if input.DurationHours < MinHours {
		return nil, ErrBelowMinimum
	}
	if !IsValidSlot(input.StartTime) || !IsValidSlot(input.EndTime) {
		return nil, errors.New("start and end time must be selected from the time slot list")
	}
	if input.StartTime == input.EndTime {
		return nil, ErrZeroDuration
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		Date:            input.Date,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		PickupLocation:  input.PickupLocation,
		DropoffLocation: input.DropoffLocation,
		FullName:        input.FullName,
		Email:           input.Email,
		Phone:           input.Phone,
		Note:            input.Note,
		DurationHours:   input.DurationHours,
		TotalPrice:      input.TotalPrice,
		DepositAmount:   input.DepositAmount,
		PaymentStatus:   "pending",
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	s.Logger.Info("booking created",
		zap.String("id", booking.ID),
		zap.String("date", booking.Date),
		zap.Float64("hours", booking.DurationHours),
	)
	return booking, nil
}

// ListBookings returns stored bookings, optionally filtered by date.
func (s *DefaultBookingService) ListBookings(ctx context.Context, date string) ([]models.Booking, error) {
	bookings, err := s.Repo.List(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// CheckAvailability evaluates a requested slot against active bookings on the date.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, date, startTime, endTime string) (models.AvailabilityResult, error) {
	existing, err := s.Repo.ListBlocking(ctx, date)
	if err != nil {
		return models.AvailabilityResult{}, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}
	return CheckSlot(startTime, endTime, existing)
}
