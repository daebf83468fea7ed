package models

import "time"

// BookingInput is the payload accepted when creating a booking.
type BookingInput struct {
	Date            string  `json:"date" binding:"required"`
	StartTime       string  `json:"start_time" binding:"required"`
	EndTime         string  `json:"end_time" binding:"required"`
	PickupLocation  string  `json:"pickup_location" binding:"required"`
	DropoffLocation string  `json:"dropoff_location" binding:"required"`
	FullName        string  `json:"full_name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required"`
	Note            string  `json:"note,omitempty"`
	DurationHours   float64 `json:"duration_hours" binding:"required"`
	TotalPrice      float64 `json:"total_price" binding:"required"`
	DepositAmount   float64 `json:"deposit_amount" binding:"required"`
}

// Booking represents a stored reservation record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                             // Unique booking identifier (UUID)
	Date            string    `bson:"date" json:"date"`                         // Booking date in "YYYY-MM-DD" format
	StartTime       string    `bson:"start_time" json:"start_time"`             // 12-hour clock, e.g. "09:00 AM"
	EndTime         string    `bson:"end_time" json:"end_time"`                 // 12-hour clock, e.g. "11:30 AM"
	PickupLocation  string    `bson:"pickup_location" json:"pickup_location"`   // Free-text pickup address
	DropoffLocation string    `bson:"dropoff_location" json:"dropoff_location"` // Free-text drop-off address
	FullName        string    `bson:"full_name" json:"full_name"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	Note            string    `bson:"note,omitempty" json:"note,omitempty"` // Optional special request
	DurationHours   float64   `bson:"duration_hours" json:"duration_hours"` // Billing duration, minimum-hours floor applied
	TotalPrice      float64   `bson:"total_price" json:"total_price"`
	DepositAmount   float64   `bson:"deposit_amount" json:"deposit_amount"`
	PaymentStatus   string    `bson:"payment_status" json:"payment_status"` // "pending", "paid" or "expired"
	SessionID       string    `bson:"session_id,omitempty" json:"session_id,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// AvailabilityResult is the outcome of a slot availability check.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}
