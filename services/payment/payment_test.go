package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"hourlyride/models"
)

type fakeGateway struct {
	createdParams *CheckoutParams
	status        models.CheckoutStatus
	statusErr     error
	webhookEvent  *WebhookEvent
	webhookErr    error
}

func (g *fakeGateway) CreateSession(ctx context.Context, params CheckoutParams) (*models.CheckoutResponse, error) {
	g.createdParams = &params
	return &models.CheckoutResponse{URL: "https://checkout.example.com/pay", SessionID: "cs_test_123"}, nil
}

func (g *fakeGateway) SessionStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error) {
	if g.statusErr != nil {
		return nil, g.statusErr
	}
	status := g.status
	return &status, nil
}

func (g *fakeGateway) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	return g.webhookEvent, g.webhookErr
}

type fakeBookings struct {
	bookings map[string]*models.Booking
	sessions map[string]string // booking ID -> session ID
	paid     []string          // session IDs marked paid
}

func newFakeBookings(bookings ...*models.Booking) *fakeBookings {
	store := &fakeBookings{
		bookings: make(map[string]*models.Booking),
		sessions: make(map[string]string),
	}
	for _, b := range bookings {
		store.bookings[b.ID] = b
	}
	return store
}

func (r *fakeBookings) Create(ctx context.Context, booking *models.Booking) error {
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return booking, nil
}

func (r *fakeBookings) List(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookings) ListBlocking(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeBookings) SetSessionID(ctx context.Context, id, sessionID string) error {
	if _, ok := r.bookings[id]; !ok {
		return mongo.ErrNoDocuments
	}
	r.sessions[id] = sessionID
	return nil
}

func (r *fakeBookings) MarkPaidBySession(ctx context.Context, sessionID string) error {
	r.paid = append(r.paid, sessionID)
	return nil
}

func (r *fakeBookings) ExpireStale(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

type fakePayments struct {
	created []models.PaymentTransaction
	paid    map[string]bool // session ID -> already paid
}

func (r *fakePayments) Create(ctx context.Context, txn *models.PaymentTransaction) error {
	r.created = append(r.created, *txn)
	if r.paid == nil {
		r.paid = make(map[string]bool)
	}
	r.paid[txn.SessionID] = false
	return nil
}

func (r *fakePayments) GetBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	for i := range r.created {
		if r.created[i].SessionID == sessionID {
			return &r.created[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakePayments) MarkPaid(ctx context.Context, sessionID string) (bool, error) {
	alreadyPaid, ok := r.paid[sessionID]
	if !ok {
		return false, mongo.ErrNoDocuments
	}
	if alreadyPaid {
		return false, nil
	}
	r.paid[sessionID] = true
	return true, nil
}

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:            "bk-1",
		Date:          "2026-10-01",
		StartTime:     "10:00 AM",
		EndTime:       "12:00 PM",
		FullName:      "Ada Jones",
		Email:         "ada@example.com",
		DepositAmount: 75.00,
		PaymentStatus: "pending",
	}
}

func newService(gateway *fakeGateway, bookings *fakeBookings, payments *fakePayments) *DefaultPaymentService {
	return &DefaultPaymentService{
		Gateway:  gateway,
		Bookings: bookings,
		Payments: payments,
		Logger:   zap.NewNop(),
	}
}

func TestCreateCheckout(t *testing.T) {
	gateway := &fakeGateway{}
	bookings := newFakeBookings(pendingBooking())
	payments := &fakePayments{}
	svc := newService(gateway, bookings, payments)

	checkout, err := svc.CreateCheckout(context.Background(), models.CheckoutRequest{
		BookingID: "bk-1",
		OriginURL: "https://atlantahourlyride.com/",
	})
	assert.NoError(t, err)
	assert.Equal(t, "cs_test_123", checkout.SessionID)
	assert.Equal(t, "https://checkout.example.com/pay", checkout.URL)

	// Session parameters are derived from the booking and origin.
	assert.Equal(t, 75.00, gateway.createdParams.AmountUSD)
	assert.Equal(t, "https://atlantahourlyride.com/booking-success?session_id={CHECKOUT_SESSION_ID}", gateway.createdParams.SuccessURL)
	assert.Equal(t, "https://atlantahourlyride.com/booking", gateway.createdParams.CancelURL)
	assert.Equal(t, "bk-1", gateway.createdParams.Metadata["booking_id"])

	// A pending transaction is recorded and the session stamped onto the booking.
	assert.Len(t, payments.created, 1)
	assert.Equal(t, "pending", payments.created[0].PaymentStatus)
	assert.Equal(t, "cs_test_123", bookings.sessions["bk-1"])
}

func TestCreateCheckoutUnknownBooking(t *testing.T) {
	svc := newService(&fakeGateway{}, newFakeBookings(), &fakePayments{})

	_, err := svc.CreateCheckout(context.Background(), models.CheckoutRequest{
		BookingID: "missing",
		OriginURL: "https://atlantahourlyride.com",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateCheckoutAlreadyPaid(t *testing.T) {
	booking := pendingBooking()
	booking.PaymentStatus = "paid"
	svc := newService(&fakeGateway{}, newFakeBookings(booking), &fakePayments{})

	_, err := svc.CreateCheckout(context.Background(), models.CheckoutRequest{
		BookingID: "bk-1",
		OriginURL: "https://atlantahourlyride.com",
	})
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestStatusSettlesPaidSessionOnce(t *testing.T) {
	gateway := &fakeGateway{status: models.CheckoutStatus{Status: "complete", PaymentStatus: "paid"}}
	bookings := newFakeBookings(pendingBooking())
	payments := &fakePayments{paid: map[string]bool{"cs_test_123": false}}
	svc := newService(gateway, bookings, payments)

	status, err := svc.Status(context.Background(), "cs_test_123")
	assert.NoError(t, err)
	assert.Equal(t, "paid", status.PaymentStatus)
	assert.Equal(t, []string{"cs_test_123"}, bookings.paid)

	// A second poll of the same session does not settle again.
	_, err = svc.Status(context.Background(), "cs_test_123")
	assert.NoError(t, err)
	assert.Len(t, bookings.paid, 1)
}

func TestStatusPendingDoesNotSettle(t *testing.T) {
	gateway := &fakeGateway{status: models.CheckoutStatus{Status: "open", PaymentStatus: "unpaid"}}
	bookings := newFakeBookings(pendingBooking())
	payments := &fakePayments{paid: map[string]bool{"cs_test_123": false}}
	svc := newService(gateway, bookings, payments)

	status, err := svc.Status(context.Background(), "cs_test_123")
	assert.NoError(t, err)
	assert.Equal(t, "unpaid", status.PaymentStatus)
	assert.Empty(t, bookings.paid)
}

func TestStatusGatewayError(t *testing.T) {
	gateway := &fakeGateway{statusErr: errors.New("stripe unreachable")}
	svc := newService(gateway, newFakeBookings(), &fakePayments{})

	_, err := svc.Status(context.Background(), "cs_test_123")
	assert.Error(t, err)
}

func TestTransactionLookup(t *testing.T) {
	payments := &fakePayments{}
	svc := newService(&fakeGateway{}, newFakeBookings(pendingBooking()), payments)

	_, err := svc.CreateCheckout(context.Background(), models.CheckoutRequest{
		BookingID: "bk-1",
		OriginURL: "https://atlantahourlyride.com",
	})
	assert.NoError(t, err)

	txn, err := svc.Transaction(context.Background(), "cs_test_123")
	assert.NoError(t, err)
	assert.Equal(t, "bk-1", txn.BookingID)
	assert.Equal(t, 75.00, txn.Amount)
}

func TestTransactionLookupUnknownSession(t *testing.T) {
	svc := newService(&fakeGateway{}, newFakeBookings(), &fakePayments{})

	_, err := svc.Transaction(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestHandleWebhookSettlesPaidSession(t *testing.T) {
	gateway := &fakeGateway{webhookEvent: &WebhookEvent{SessionID: "cs_test_123", Paid: true}}
	bookings := newFakeBookings(pendingBooking())
	payments := &fakePayments{paid: map[string]bool{"cs_test_123": false}}
	svc := newService(gateway, bookings, payments)

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	assert.NoError(t, err)
	assert.Equal(t, []string{"cs_test_123"}, bookings.paid)
}

func TestHandleWebhookIgnoresOtherEvents(t *testing.T) {
	gateway := &fakeGateway{webhookEvent: &WebhookEvent{}}
	bookings := newFakeBookings(pendingBooking())
	svc := newService(gateway, bookings, &fakePayments{})

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	assert.NoError(t, err)
	assert.Empty(t, bookings.paid)
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	gateway := &fakeGateway{webhookErr: errors.New("signature mismatch")}
	svc := newService(gateway, newFakeBookings(), &fakePayments{})

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "bad")
	assert.Error(t, err)
}
