// File: hourlyride/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints
	CreateBooking     gin.HandlerFunc
	ListBookings      gin.HandlerFunc
	CheckAvailability gin.HandlerFunc
	GetTimeSlots      gin.HandlerFunc
	QuotePrice        gin.HandlerFunc

	// Payment endpoints
	CreateCheckout   gin.HandlerFunc
	GetPaymentStatus gin.HandlerFunc
	GetTransaction   gin.HandlerFunc
	StripeWebhook    gin.HandlerFunc

	// Contact endpoints
	CreateContact gin.HandlerFunc
	ListContacts  gin.HandlerFunc

	// Chat endpoint
	ChatMessage gin.HandlerFunc

	// Geocode endpoint
	GeocodeSuggest gin.HandlerFunc
}
