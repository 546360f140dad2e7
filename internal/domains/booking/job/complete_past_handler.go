package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"karzone-backend/internal/domains/booking/repository"
	"karzone-backend/pkg/logger"
)

// CompletePastBookingsHandler persists "completed" on confirmed bookings
// whose return date has passed. Display logic still derives the status, so
// behavior is identical whether or not this sweep has run; persisting it
// keeps the stored data honest for reporting.
type CompletePastBookingsHandler struct {
	bookingRepo repository.BookingRepository
}

func NewCompletePastBookingsHandler(bookingRepo repository.BookingRepository) *CompletePastBookingsHandler {
	return &CompletePastBookingsHandler{bookingRepo: bookingRepo}
}

func (h *CompletePastBookingsHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	updated, err := h.bookingRepo.CompletePastBookings(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("completion sweep: %w", err)
	}

	if updated > 0 {
		logger.Info("completion sweep done", map[string]interface{}{
			"bookings_completed": updated,
		})
	}
	return nil
}
