package repository

import (
	"context"

	"github.com/google/uuid"

	"karzone-backend/internal/domains/review/model"
)

// ReviewRepository defines data access for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Review, error)
	ListByCar(ctx context.Context, carID int) ([]*model.ReviewWithAuthor, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Review, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetCarSummary(ctx context.Context, carID int) (*model.RatingSummary, error)
}
