// File: hourlyride/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"

	"hourlyride/config"
	"hourlyride/cron"
	"hourlyride/database"
	bookingRepoPkg "hourlyride/database/repository/booking"
	contactRepoPkg "hourlyride/database/repository/contact"
	paymentRepoPkg "hourlyride/database/repository/payment"
	"hourlyride/handlers"
	"hourlyride/middleware"
	"hourlyride/routes"
	"hourlyride/services/booking"
	"hourlyride/services/geocode"
	"hourlyride/services/payment"
	"hourlyride/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitGeocodeCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:   bookingRepo,
		Logger: logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Gateway:  payment.NewStripeGateway(config.AppConfig.StripeWebhookSecret),
		Bookings: bookingRepo,
		Payments: paymentRepo,
		Logger:   logger,
	}
	geocoder := geocode.NewMapboxGeocoder(
		config.AppConfig.MapboxToken,
		utils.GetGeocodeCacheClient(),
		logger,
	)

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	contactHandler := handlers.NewContactHandler(contactRepo, logger)
	geocodeHandler := handlers.NewGeocodeHandler(geocoder, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking endpoints.
		CreateBooking:     bookingHandler.CreateBooking,
		ListBookings:      bookingHandler.ListBookings,
		CheckAvailability: bookingHandler.CheckAvailability,
		GetTimeSlots:      bookingHandler.GetTimeSlots,
		QuotePrice:        bookingHandler.QuotePrice,

		// Payment endpoints.
		CreateCheckout:   paymentHandler.CreateCheckout,
		GetPaymentStatus: paymentHandler.GetStatus,
		GetTransaction:   paymentHandler.GetTransaction,
		StripeWebhook:    paymentHandler.StripeWebhook,

		// Contact endpoints.
		CreateContact: contactHandler.CreateContact,
		ListContacts:  contactHandler.ListContacts,

		// Chat endpoint.
		ChatMessage: handlers.ChatMessage,

		// Geocode endpoint.
		GeocodeSuggest: geocodeHandler.Suggest,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background expiry of abandoned pending bookings.
	cron.InitExpiryWorker(bookingRepo)

	// Periodic dependency health snapshots for /health.
	utils.StartHealthMonitor([]*redis.Client{utils.GetGeocodeCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
