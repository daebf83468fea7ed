package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"hourlyride/config"
	bookingRepo "hourlyride/database/repository/booking"
)

const TypeBookingExpire = "booking:expire"

// PendingBookingTTL is how long an unpaid booking keeps blocking availability
// before it is marked expired.
const PendingBookingTTL = 24 * time.Hour

// InitExpiryWorker runs the async worker and its periodic schedule in background.
func InitExpiryWorker(repo bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingExpire, handleExpireTask(repo))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeBookingExpire, nil)); err != nil {
		log.Fatalf("[ExpiryWorker] failed to register schedule: %v", err)
	}

	// Start async worker with retry logic
	go func() {
		log.Println("[ExpiryWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ExpiryWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleExpireTask(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		cutoff := time.Now().UTC().Add(-PendingBookingTTL)
		expired, err := repo.ExpireStale(ctx, cutoff)
		if err != nil {
			log.Printf("[ExpiryWorker] failed to expire stale bookings: %v", err)
			return err
		}
		if expired > 0 {
			log.Printf("[ExpiryWorker] expired %d stale pending bookings", expired)
		}
		return nil
	}
}
