package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"hourlyride/models"
)

type fakeBookingRepo struct {
	created  []models.Booking
	blocking []models.Booking
	listErr  error
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	r.created = append(r.created, *booking)
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeBookingRepo) List(ctx context.Context, date string) ([]models.Booking, error) {
	return r.created, r.listErr
}

func (r *fakeBookingRepo) ListBlocking(ctx context.Context, date string) ([]models.Booking, error) {
	return r.blocking, r.listErr
}

func (r *fakeBookingRepo) SetSessionID(ctx context.Context, id, sessionID string) error {
	return nil
}

func (r *fakeBookingRepo) MarkPaidBySession(ctx context.Context, sessionID string) error {
	return nil
}

func (r *fakeBookingRepo) ExpireStale(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func validInput() models.BookingInput {
	return models.BookingInput{
		Date:            "2026-10-01",
		StartTime:       "10:00 AM",
		EndTime:         "12:00 PM",
		PickupLocation:  "100 Peachtree St NE, Atlanta",
		DropoffLocation: "Hartsfield-Jackson Airport",
		FullName:        "Ada Jones",
		Email:           "ada@example.com",
		Phone:           "+1 404 555 0100",
		DurationHours:   2.0,
		TotalPrice:      150.00,
		DepositAmount:   75.00,
	}
}

func TestCreateBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo, Logger: zap.NewNop()}

	created, err := svc.CreateBooking(context.Background(), validInput())
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "pending", created.PaymentStatus)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, repo.created, 1)
}

func TestCreateBookingRejectsBelowMinimum(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo, Logger: zap.NewNop()}

	input := validInput()
	input.DurationHours = 1.5

	_, err := svc.CreateBooking(context.Background(), input)
	assert.ErrorIs(t, err, ErrBelowMinimum)
	assert.Empty(t, repo.created)
}

func TestCreateBookingRejectsOffGridTimes(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo, Logger: zap.NewNop()}

	input := validInput()
	input.StartTime = "10:05 AM"

	_, err := svc.CreateBooking(context.Background(), input)
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestCheckAvailabilityUsesBlockingBookings(t *testing.T) {
	repo := &fakeBookingRepo{
		blocking: []models.Booking{existingBooking("10:00 AM", "12:00 PM")},
	}
	svc := &DefaultBookingService{Repo: repo, Logger: zap.NewNop()}

	result, err := svc.CheckAvailability(context.Background(), "2026-10-01", "12:30 PM", "02:30 PM")
	assert.NoError(t, err)
	assert.False(t, result.Available)

	result, err = svc.CheckAvailability(context.Background(), "2026-10-01", "01:30 PM", "03:30 PM")
	assert.NoError(t, err)
	assert.True(t, result.Available)
}
