package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"karzone-backend/internal/domains/booking/model"
)

type BookingRepository interface {
	// Create creates new booking
	Create(ctx context.Context, booking *model.Booking) error

	// GetByID gets booking by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)

	// ListByUser lists a user's bookings, newest created first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Booking, error)

	// UpdateStatus sets the persisted status
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) error

	// UpdateContact writes the two mutable contact fields
	UpdateContact(ctx context.Context, id uuid.UUID, pickupLocation, phone string) error

	// Delete permanently removes the booking
	Delete(ctx context.Context, id uuid.UUID) error

	// CompletePastBookings marks confirmed bookings whose return date has
	// passed as completed. Returns the number of bookings updated.
	CompletePastBookings(ctx context.Context, now time.Time) (int64, error)
}
