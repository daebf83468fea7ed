package client

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"hourlyride/models"
	"hourlyride/services/booking"
)

// BookingDraft is the transient form state for one booking attempt.
type BookingDraft struct {
	Date            string
	StartTime       string
	EndTime         string
	PickupLocation  string
	DropoffLocation string
	FullName        string
	Email           string
	Phone           string
	Note            string
}

// ValidationError reports a missing or invalid form field. No network call
// is made when validation fails.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// UnavailableError reports a slot conflict, carrying the server's reason.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string { return e.Reason }

// SubmissionFlow runs the booking submission sequence: availability check,
// booking creation, checkout session creation. Each step depends on the
// previous one's result; any failure aborts the attempt. No step is retried.
type SubmissionFlow struct {
	Availability AvailabilityChecker
	Bookings     BookingCreator
	Checkout     CheckoutStarter
	OriginURL    string
	Logger       *zap.Logger

	busy atomic.Bool
}

// Busy reports whether a submission is in flight. It stays set after a
// successful Submit, since the caller is expected to navigate away.
func (f *SubmissionFlow) Busy() bool {
	return f.busy.Load()
}

// Submit validates the draft and runs the sequence, returning the hosted
// checkout URL to navigate to. Errors are one of: *ValidationError (nothing
// was sent), *UnavailableError (no booking created), or the failing step's
// error with the server message preserved.
func (f *SubmissionFlow) Submit(ctx context.Context, draft BookingDraft) (string, error) {
	quote, err := validateDraft(draft)
	if err != nil {
		return "", err
	}

	f.busy.Store(true)

	availability, err := f.Availability.CheckAvailability(ctx, draft.Date, draft.StartTime, draft.EndTime)
	if err != nil {
		f.busy.Store(false)
		return "", fmt.Errorf("availability check failed: %w", err)
	}
	if !availability.Available {
		f.busy.Store(false)
		return "", &UnavailableError{Reason: availability.Message}
	}

	// The booking carries the billing duration, never the raw one.
	bookingID, err := f.Bookings.CreateBooking(ctx, models.BookingInput{
		Date:            draft.Date,
		StartTime:       draft.StartTime,
		EndTime:         draft.EndTime,
		PickupLocation:  draft.PickupLocation,
		DropoffLocation: draft.DropoffLocation,
		FullName:        draft.FullName,
		Email:           draft.Email,
		Phone:           draft.Phone,
		Note:            draft.Note,
		DurationHours:   quote.BillingHours,
		TotalPrice:      quote.TotalPrice,
		DepositAmount:   quote.DepositAmount,
	})
	if err != nil {
		f.busy.Store(false)
		return "", err
	}

	redirectURL, err := f.Checkout.CreateCheckout(ctx, bookingID, f.OriginURL)
	if err != nil {
		f.busy.Store(false)
		return "", err
	}

	if f.Logger != nil {
		f.Logger.Info("booking submitted",
			zap.String("booking", bookingID),
			zap.Float64("deposit", quote.DepositAmount),
		)
	}
	return redirectURL, nil
}

func validateDraft(draft BookingDraft) (booking.Quote, error) {
	required := []struct {
		value string
		name  string
	}{
		{draft.Date, "date"},
		{draft.StartTime, "start time"},
		{draft.EndTime, "end time"},
		{draft.PickupLocation, "pickup location"},
		{draft.DropoffLocation, "drop-off location"},
		{draft.FullName, "full name"},
		{draft.Email, "email"},
		{draft.Phone, "phone"},
	}
	for _, field := range required {
		if field.value == "" {
			return booking.Quote{}, &ValidationError{Reason: "please fill in all required fields: missing " + field.name}
		}
	}

	quote, err := booking.ComputeQuote(draft.StartTime, draft.EndTime)
	if err != nil {
		return booking.Quote{}, &ValidationError{Reason: err.Error()}
	}
	return quote, nil
}
