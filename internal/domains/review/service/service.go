package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"karzone-backend/internal/config"
	bookingmodel "karzone-backend/internal/domains/booking/model"
	"karzone-backend/internal/domains/review/model"
	"karzone-backend/internal/domains/review/repository"
	"karzone-backend/pkg/cache"
	"karzone-backend/pkg/logger"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type reviewService struct {
	reviewRepo repository.ReviewRepository
	bookings   BookingReader
	cache      cache.Cache // nil disables summary caching
	now        func() time.Time
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	bookings BookingReader,
	cacheClient cache.Cache,
) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
		bookings:   bookings,
		cache:      cacheClient,
		now:        time.Now,
	}
}

func ratingSummaryCacheKey(carID int) string {
	return fmt.Sprintf("rating_summary:car:%d", carID)
}

// =====================================================
// CREATE REVIEW
// =====================================================

func (s *reviewService) CreateReview(
	ctx context.Context,
	userID uuid.UUID,
	req model.CreateReviewRequest,
) (*model.Review, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, model.NewBookingNotFoundError()
	}

	// Step 2: Load the booking; reviews hang off bookings, not cars
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if err == bookingmodel.ErrBookingNotFound {
			return nil, model.NewBookingNotFoundError()
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	// Step 3: Only the booking owner may review it
	if !booking.IsOwnedBy(userID) {
		return nil, model.NewForbiddenError()
	}

	// Step 4: Cancelled bookings never become reviewable
	if booking.Status == bookingmodel.StatusCancelled {
		return nil, model.NewCancelledBookingError()
	}

	// Step 5: The rental must be over
	if !booking.IsCompleted(s.now()) {
		return nil, model.NewNotCompletedError()
	}

	// Step 6: One review per booking
	if _, err := s.reviewRepo.GetByBooking(ctx, bookingID); err == nil {
		return nil, model.NewAlreadyReviewedError()
	} else if err != model.ErrReviewNotFound {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	// Step 7: Build and persist; car fields snapshot from the booking
	now := s.now()
	review := &model.Review{
		ID:        uuid.New(),
		UserID:    userID,
		BookingID: bookingID,
		CarID:     booking.CarID,
		CarName:   booking.CarName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if err == model.ErrAlreadyReviewed {
			return nil, model.NewAlreadyReviewedError()
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.invalidateSummary(ctx, review.CarID)

	return review, nil
}

// =====================================================
// GET CAR REVIEWS
// =====================================================

func (s *reviewService) GetCarReviews(ctx context.Context, carID int) ([]*model.ReviewWithAuthor, error) {
	reviews, err := s.reviewRepo.ListByCar(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// =====================================================
// GET CAR RATING SUMMARY
// =====================================================

func (s *reviewService) GetCarRatingSummary(ctx context.Context, carID int) (*model.RatingSummary, error) {
	key := ratingSummaryCacheKey(carID)

	// Step 1: Try the cache
	if s.cache != nil {
		var cached model.RatingSummary
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			// A broken cache degrades to a database read
			logger.Warn("rating summary cache read failed", map[string]interface{}{"error": err.Error()})
		} else if hit {
			return &cached, nil
		}
	}

	// Step 2: Compute from the database
	summary, err := s.reviewRepo.GetCarSummary(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating summary: %w", err)
	}

	// Step 3: Store for the next reader
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, summary, config.RatingSummaryTTL); err != nil {
			logger.Warn("rating summary cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return summary, nil
}

// =====================================================
// GET MY REVIEWS
// =====================================================

func (s *reviewService) GetMyReviews(ctx context.Context, userID uuid.UUID) ([]*model.Review, error) {
	reviews, err := s.reviewRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// =====================================================
// UPDATE REVIEW
// =====================================================

func (s *reviewService) UpdateReview(
	ctx context.Context,
	userID, reviewID uuid.UUID,
	req model.UpdateReviewRequest,
) (*model.Review, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load and check ownership
	review, err := s.getOwnedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	// Step 3: Apply provided fields; zero values keep the stored ones
	if req.Rating != 0 {
		review.Rating = req.Rating
	}
	if req.Comment != "" {
		review.Comment = req.Comment
	}
	review.UpdatedAt = s.now()

	// Step 4: Persist
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	s.invalidateSummary(ctx, review.CarID)

	return review, nil
}

// =====================================================
// DELETE REVIEW
// =====================================================

func (s *reviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	review, err := s.getOwnedReview(ctx, userID, reviewID)
	if err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.invalidateSummary(ctx, review.CarID)

	return nil
}

// getOwnedReview loads a review and enforces ownership for mutating
// operations.
func (s *reviewService) getOwnedReview(ctx context.Context, userID, reviewID uuid.UUID) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if err == model.ErrReviewNotFound {
			return nil, model.NewReviewNotFoundError()
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	if review.UserID != userID {
		return nil, model.NewForbiddenError()
	}

	return review, nil
}

func (s *reviewService) invalidateSummary(ctx context.Context, carID int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, ratingSummaryCacheKey(carID)); err != nil {
		logger.Warn("rating summary cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
