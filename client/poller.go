package client

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Poller defaults, matching the booking page behavior.
const (
	DefaultPollInterval = 2 * time.Second
	DefaultMaxAttempts  = 5
	// HomeRedirectDelay is how long the success notice stays up before the
	// caller should navigate back to the home page.
	HomeRedirectDelay = 3 * time.Second
)

// PollState is a terminal outcome of a polling session.
type PollState int

const (
	// PollSucceeded: the session is paid.
	PollSucceeded PollState = iota
	// PollExpired: the provider reported the session as expired.
	PollExpired
	// PollTimedOut: the attempt budget ran out without resolution.
	PollTimedOut
	// PollFailed: a transport or collaborator error stopped polling.
	PollFailed
	// PollCanceled: the context was canceled (page teardown).
	PollCanceled
)

func (s PollState) String() string {
	switch s {
	case PollSucceeded:
		return "succeeded"
	case PollExpired:
		return "expired"
	case PollTimedOut:
		return "timed out"
	case PollFailed:
		return "failed"
	case PollCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// PollResult describes how a polling session ended.
type PollResult struct {
	State    PollState
	Attempts int
	Err      error // set only for PollFailed and PollCanceled
}

// StatusPoller repeatedly checks a checkout session's payment status until a
// terminal state is reached. Each check is scheduled only after the previous
// response arrives, so polls never overlap.
type StatusPoller struct {
	Status      StatusFetcher
	Interval    time.Duration // defaults to DefaultPollInterval
	MaxAttempts int           // defaults to DefaultMaxAttempts
	Logger      *zap.Logger
}

// Poll runs the bounded polling loop. Canceling the context models the page
// being torn down: any pending scheduled check is dropped.
func (p *StatusPoller) Poll(ctx context.Context, sessionID string) PollResult {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	maxAttempts := p.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, err := p.Status.PaymentStatus(ctx, sessionID)
		if err != nil {
			if ctx.Err() != nil {
				return PollResult{State: PollCanceled, Attempts: attempt, Err: ctx.Err()}
			}
			p.log().Warn("payment verification failed",
				zap.String("session", sessionID),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return PollResult{State: PollFailed, Attempts: attempt, Err: err}
		}

		switch {
		case status.PaymentStatus == "paid":
			p.log().Info("payment confirmed", zap.String("session", sessionID), zap.Int("attempt", attempt))
			return PollResult{State: PollSucceeded, Attempts: attempt}
		case status.Status == "expired":
			return PollResult{State: PollExpired, Attempts: attempt}
		}

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return PollResult{State: PollCanceled, Attempts: attempt, Err: ctx.Err()}
		case <-timer.C:
		}
	}

	return PollResult{State: PollTimedOut, Attempts: maxAttempts}
}

func (p *StatusPoller) log() *zap.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return zap.NewNop()
}
