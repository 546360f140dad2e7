package main

import (
	"log"

	"github.com/hibiken/asynq"

	"karzone-backend/internal/domains/booking/job"
	"karzone-backend/internal/shared"
)

// asynqScheduler wraps asynq.Scheduler with additional functionality
type asynqScheduler struct {
	*asynq.Scheduler
}

// setupScheduler registers the recurring jobs and starts the scheduler
func setupScheduler(cfg *Config) *asynqScheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		},
		nil,
	)

	// Hourly sweep marking confirmed bookings past their return date as
	// completed, so review eligibility survives restarts.
	task, err := job.NewCompletePastBookingsTask()
	if err != nil {
		log.Fatalf("[Scheduler] Failed to build sweep task: %v", err)
	}
	if _, err := scheduler.Register("@every 1h", task, asynq.Queue(shared.QueueDefault)); err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

// Shutdown gracefully shuts down the scheduler
func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] ✓ Stopped")
}
