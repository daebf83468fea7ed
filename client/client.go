// Package client implements the booking-page flow against the API: the
// validated submission sequence that ends in a hosted-checkout redirect, and
// the bounded payment status poller that runs after the user returns.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hourlyride/models"
)

// AvailabilityChecker asks the server whether a slot is free.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, date, startTime, endTime string) (models.AvailabilityResult, error)
}

// BookingCreator submits a booking and returns its identifier.
type BookingCreator interface {
	CreateBooking(ctx context.Context, input models.BookingInput) (string, error)
}

// CheckoutStarter opens a hosted checkout session and returns the redirect URL.
type CheckoutStarter interface {
	CreateCheckout(ctx context.Context, bookingID, originURL string) (string, error)
}

// StatusFetcher reports the state of a checkout session.
type StatusFetcher interface {
	PaymentStatus(ctx context.Context, sessionID string) (models.CheckoutStatus, error)
}

// RemoteError carries the server-provided message for a failed call.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client is an HTTP implementation of all flow collaborators.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for the given API base URL, e.g. "https://host/api".
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) CheckAvailability(ctx context.Context, date, startTime, endTime string) (models.AvailabilityResult, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("start_time", startTime)
	query.Set("end_time", endTime)

	var result models.AvailabilityResult
	err := c.get(ctx, "/bookings/check-availability?"+query.Encode(), &result)
	return result, err
}

func (c *Client) CreateBooking(ctx context.Context, input models.BookingInput) (string, error) {
	var booking models.Booking
	if err := c.post(ctx, "/bookings", input, &booking); err != nil {
		return "", err
	}
	return booking.ID, nil
}

func (c *Client) CreateCheckout(ctx context.Context, bookingID, originURL string) (string, error) {
	var checkout models.CheckoutResponse
	req := models.CheckoutRequest{BookingID: bookingID, OriginURL: originURL}
	if err := c.post(ctx, "/payments/checkout", req, &checkout); err != nil {
		return "", err
	}
	return checkout.URL, nil
}

func (c *Client) PaymentStatus(ctx context.Context, sessionID string) (models.CheckoutStatus, error) {
	var status models.CheckoutStatus
	err := c.get(ctx, "/payments/status/"+url.PathEscape(sessionID), &status)
	return status, err
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &RemoteError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
