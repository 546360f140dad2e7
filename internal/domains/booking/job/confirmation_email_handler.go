package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"karzone-backend/internal/domains/booking/model"
	"karzone-backend/internal/domains/booking/repository"
	"karzone-backend/internal/infrastructure/email"
	"karzone-backend/pkg/logger"
)

// ConfirmationEmailHandler sends the booking confirmation mail.
type ConfirmationEmailHandler struct {
	bookingRepo  repository.BookingRepository
	emailService email.EmailService
}

func NewConfirmationEmailHandler(
	bookingRepo repository.BookingRepository,
	emailService email.EmailService,
) *ConfirmationEmailHandler {
	return &ConfirmationEmailHandler{
		bookingRepo:  bookingRepo,
		emailService: emailService,
	}
}

func (h *ConfirmationEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload ConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// Malformed payload will never succeed; skip retries
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	booking, err := h.bookingRepo.GetByID(ctx, payload.BookingID)
	if err != nil {
		if err == model.ErrBookingNotFound {
			// Deleted before the mail went out; nothing to do
			logger.Warn("confirmation email skipped, booking gone", map[string]interface{}{
				"booking_id": payload.BookingID.String(),
			})
			return nil
		}
		return fmt.Errorf("load booking: %w", err)
	}

	data := email.BookingConfirmationData{
		Email:          booking.Email,
		FullName:       booking.FullName,
		CarName:        booking.CarName,
		PickupDate:     booking.PickupDate.Format(model.DateLayout),
		ReturnDate:     booking.ReturnDate.Format(model.DateLayout),
		PickupLocation: booking.PickupLocation,
		TotalDays:      booking.TotalDays,
		TotalPrice:     booking.TotalPrice.StringFixed(2),
		TransactionID:  booking.TransactionID,
	}

	if err := h.emailService.SendBookingConfirmation(ctx, data); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}

	logger.Info("confirmation email sent", map[string]interface{}{
		"booking_id": booking.ID.String(),
		"email":      booking.Email,
	})
	return nil
}
