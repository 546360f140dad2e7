package service

import (
	"context"

	"github.com/google/uuid"

	bookingmodel "karzone-backend/internal/domains/booking/model"
	"karzone-backend/internal/domains/review/model"
)

type ServiceInterface interface {
	CreateReview(ctx context.Context, userID uuid.UUID, req model.CreateReviewRequest) (*model.Review, error)
	GetCarReviews(ctx context.Context, carID int) ([]*model.ReviewWithAuthor, error)
	GetCarRatingSummary(ctx context.Context, carID int) (*model.RatingSummary, error)
	GetMyReviews(ctx context.Context, userID uuid.UUID) ([]*model.Review, error)
	UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error)
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}

// BookingReader is the slice of the booking domain the eligibility check
// needs. Satisfied by the booking repository.
type BookingReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*bookingmodel.Booking, error)
}
