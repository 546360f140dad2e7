package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"karzone-backend/internal/domains/booking/model"
	catalogmodel "karzone-backend/internal/domains/catalog/model"
)

type ServiceInterface interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req model.CreateBookingRequest) (*model.BookingResponse, error)
	ListMyBookings(ctx context.Context, userID uuid.UUID) ([]model.BookingResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) (*model.BookingResponse, error)
	DeleteBooking(ctx context.Context, userID, bookingID uuid.UUID) error
	UpdateBooking(ctx context.Context, userID, bookingID uuid.UUID, req model.UpdateBookingRequest) (*model.BookingResponse, error)
	GetReceipt(ctx context.Context, userID, bookingID uuid.UUID) ([]byte, error)
}

// CarCatalog is the slice of the catalog the booking core needs: the daily
// rate and the snapshot fields at creation time.
type CarCatalog interface {
	GetByID(id int) (*catalogmodel.Car, error)
}

// TaskEnqueuer queues background work. Satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ReceiptGenerator renders the payment receipt PDF for a booking.
type ReceiptGenerator interface {
	Generate(booking *model.Booking) ([]byte, error)
}
