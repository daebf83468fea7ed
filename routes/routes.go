package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hourlyride/config"
	"hourlyride/handlers"
	"hourlyride/utils"
)

// RegisterBookingRoutes sets up the reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBooking)
		api.GET("", hb.ListBookings)
		api.GET("/check-availability", hb.CheckAvailability)
		api.GET("/time-slots", hb.GetTimeSlots)
		api.GET("/quote", hb.QuotePrice)
	}
}

// RegisterPaymentRoutes sets up checkout and payment status endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/checkout", hb.CreateCheckout)
		api.GET("/status/:session_id", hb.GetPaymentStatus)
		api.GET("/transactions/:session_id", hb.GetTransaction)
	}
	// Stripe calls this directly; it lives outside the payments group.
	r.POST("/api/webhook/stripe", hb.StripeWebhook)
}

// RegisterContactRoutes sets up the contact form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.CreateContact)
	r.GET("/api/contact", hb.ListContacts)
}

// RegisterChatRoutes sets up the canned chat responder.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/chat", hb.ChatMessage)
}

// RegisterGeocodeRoutes sets up address autocomplete.
func RegisterGeocodeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/geocode/suggest", hb.GeocodeSuggest)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.AppConfig.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterGeocodeRoutes(r, hb)
}
