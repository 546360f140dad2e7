package job

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"karzone-backend/internal/shared"
)

// ConfirmationEmailPayload identifies the booking to send the mail for.
// The handler reloads the booking so the mail always reflects current data.
type ConfirmationEmailPayload struct {
	BookingID uuid.UUID `json:"booking_id"`
}

// CompletePastBookingsPayload is empty; the sweep works off the clock.
type CompletePastBookingsPayload struct{}

func NewConfirmationEmailTask(bookingID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(ConfirmationEmailPayload{BookingID: bookingID})
	if err != nil {
		return nil, fmt.Errorf("marshal confirmation email payload: %w", err)
	}
	return asynq.NewTask(shared.TypeBookingConfirmationEmail, payload), nil
}

func NewCompletePastBookingsTask() (*asynq.Task, error) {
	payload, err := json.Marshal(CompletePastBookingsPayload{})
	if err != nil {
		return nil, fmt.Errorf("marshal sweep payload: %w", err)
	}
	return asynq.NewTask(shared.TypeCompletePastBookings, payload), nil
}
