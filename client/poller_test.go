package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hourlyride/models"
)

type scriptedStatus struct {
	responses []models.CheckoutStatus
	errs      []error
	calls     int
}

func (s *scriptedStatus) PaymentStatus(ctx context.Context, sessionID string) (models.CheckoutStatus, error) {
	index := s.calls
	s.calls++
	if index < len(s.errs) && s.errs[index] != nil {
		return models.CheckoutStatus{}, s.errs[index]
	}
	if index < len(s.responses) {
		return s.responses[index], nil
	}
	// Past the script, keep reporting the last known state.
	if len(s.responses) > 0 {
		return s.responses[len(s.responses)-1], nil
	}
	return models.CheckoutStatus{Status: "open", PaymentStatus: "unpaid"}, nil
}

func newPoller(status StatusFetcher) *StatusPoller {
	return &StatusPoller{
		Status:   status,
		Interval: time.Millisecond,
	}
}

func TestPollSucceedsOnSecondAttempt(t *testing.T) {
	status := &scriptedStatus{
		responses: []models.CheckoutStatus{
			{Status: "open", PaymentStatus: "unpaid"},
			{Status: "complete", PaymentStatus: "paid"},
		},
	}
	result := newPoller(status).Poll(context.Background(), "cs_test_123")

	assert.Equal(t, PollSucceeded, result.State)
	assert.Equal(t, 2, result.Attempts)
	// No further check once the session is paid.
	assert.Equal(t, 2, status.calls)
}

func TestPollExhaustsAttemptBudget(t *testing.T) {
	status := &scriptedStatus{} // always pending
	result := newPoller(status).Poll(context.Background(), "cs_test_123")

	assert.Equal(t, PollTimedOut, result.State)
	assert.Equal(t, 5, result.Attempts)
	// Exactly five checks, never a sixth.
	assert.Equal(t, 5, status.calls)
}

func TestPollStopsOnExpiredSession(t *testing.T) {
	status := &scriptedStatus{
		responses: []models.CheckoutStatus{
			{Status: "expired", PaymentStatus: "unpaid"},
		},
	}
	result := newPoller(status).Poll(context.Background(), "cs_test_123")

	assert.Equal(t, PollExpired, result.State)
	assert.Equal(t, 1, result.Attempts)
	assert.Equal(t, 1, status.calls)
}

func TestPollStopsOnTransportError(t *testing.T) {
	status := &scriptedStatus{
		errs: []error{nil, errors.New("connection refused")},
		responses: []models.CheckoutStatus{
			{Status: "open", PaymentStatus: "unpaid"},
		},
	}
	result := newPoller(status).Poll(context.Background(), "cs_test_123")

	assert.Equal(t, PollFailed, result.State)
	assert.Equal(t, 2, result.Attempts)
	assert.Error(t, result.Err)
	// A verification error is terminal; the attempt budget is not consumed further.
	assert.Equal(t, 2, status.calls)
}

func TestPollCanceledBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	status := &scriptedStatus{} // always pending

	poller := &StatusPoller{Status: status, Interval: time.Hour}
	done := make(chan PollResult, 1)
	go func() {
		done <- poller.Poll(ctx, "cs_test_123")
	}()

	// Let the first check complete, then tear the page down.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case result := <-done:
		assert.Equal(t, PollCanceled, result.State)
		assert.Equal(t, 1, status.calls)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
}
