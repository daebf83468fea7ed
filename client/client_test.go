package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hourlyride/models"
)

// newFakeAPI spins up a minimal API for the full submission sequence.
func newFakeAPI(t *testing.T, available bool, unavailableReason string) (*httptest.Server, *[]string) {
	t.Helper()
	var calls []string

	mux := http.NewServeMux()
	mux.HandleFunc("/bookings/check-availability", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "availability")
		assert.Equal(t, "2026-10-01", r.URL.Query().Get("date"))
		json.NewEncoder(w).Encode(models.AvailabilityResult{Available: available, Message: unavailableReason})
	})
	mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "create-booking")
		var input models.BookingInput
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, 2.0, input.DurationHours)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Booking{ID: "bk-1"})
	})
	mux.HandleFunc("/payments/checkout", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "checkout")
		json.NewEncoder(w).Encode(models.CheckoutResponse{URL: "https://checkout.example.com/pay", SessionID: "cs_1"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &calls
}

func TestSubmissionSequenceOverHTTP(t *testing.T) {
	server, calls := newFakeAPI(t, true, "")
	api := New(server.URL)

	flow := &SubmissionFlow{
		Availability: api,
		Bookings:     api,
		Checkout:     api,
		OriginURL:    "https://atlantahourlyride.com",
	}

	draft := validDraft()
	draft.StartTime = "10:00 AM"
	draft.EndTime = "12:00 PM"

	redirectURL, err := flow.Submit(context.Background(), draft)
	assert.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/pay", redirectURL)
	assert.Equal(t, []string{"availability", "create-booking", "checkout"}, *calls)
}

func TestSubmissionSequenceStopsAtConflictOverHTTP(t *testing.T) {
	server, calls := newFakeAPI(t, false, "Slot taken")
	api := New(server.URL)

	flow := &SubmissionFlow{
		Availability: api,
		Bookings:     api,
		Checkout:     api,
		OriginURL:    "https://atlantahourlyride.com",
	}

	draft := validDraft()
	draft.StartTime = "10:00 AM"
	draft.EndTime = "12:00 PM"

	_, err := flow.Submit(context.Background(), draft)

	var unavailableErr *UnavailableError
	assert.ErrorAs(t, err, &unavailableErr)
	assert.Equal(t, "Slot taken", unavailableErr.Reason)
	assert.Equal(t, []string{"availability"}, *calls)
}

func TestClientDecodesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "minimum booking duration is 2 hours"})
	}))
	t.Cleanup(server.Close)

	api := New(server.URL)
	_, err := api.CreateBooking(context.Background(), models.BookingInput{})

	var remoteErr *RemoteError
	assert.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	assert.Equal(t, "minimum booking duration is 2 hours", remoteErr.Message)
}

func TestClientFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	api := New(server.URL)
	_, err := api.CreateBooking(context.Background(), models.BookingInput{})

	var remoteErr *RemoteError
	assert.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "request failed with status 500", remoteErr.Error())
}

func TestPaymentStatusOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/status/cs_1", r.URL.Path)
		json.NewEncoder(w).Encode(models.CheckoutStatus{Status: "complete", PaymentStatus: "paid", AmountTotal: 7500, Currency: "usd"})
	}))
	t.Cleanup(server.Close)

	api := New(server.URL)
	status, err := api.PaymentStatus(context.Background(), "cs_1")
	assert.NoError(t, err)
	assert.Equal(t, "paid", status.PaymentStatus)
	assert.Equal(t, int64(7500), status.AmountTotal)
}
