package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hourlyride/models"
	"hourlyride/services/booking"
)

// BookingHandler exposes reservation endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking payload", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, booking.ErrBelowMinimum) || errors.Is(err, booking.ErrZeroDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListBookings handles GET /api/bookings with an optional date filter.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListBookings(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.Logger.Error("booking list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CheckAvailability handles GET /api/bookings/check-availability.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	startTime := c.Query("start_time")
	endTime := c.Query("end_time")
	if date == "" || startTime == "" || endTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, start_time and end_time are required"})
		return
	}

	result, err := h.Service.CheckAvailability(c.Request.Context(), date, startTime, endTime)
	if err != nil {
		h.Logger.Error("availability check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check availability"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetTimeSlots handles GET /api/bookings/time-slots.
func (h *BookingHandler) GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": booking.TimeSlots})
}

// QuotePrice handles GET /api/bookings/quote so the form can render server-
// computed prices.
func (h *BookingHandler) QuotePrice(c *gin.Context) {
	startTime := c.Query("start_time")
	endTime := c.Query("end_time")
	if startTime == "" || endTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time and end_time are required"})
		return
	}

	quote, err := booking.ComputeQuote(startTime, endTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}
