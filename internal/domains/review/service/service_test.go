package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingmodel "karzone-backend/internal/domains/booking/model"
	"karzone-backend/internal/domains/review/model"
)

// =====================================================
// FAKES
// =====================================================

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*model.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*model.Review)}
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *model.Review) error {
	for _, existing := range r.reviews {
		if existing.BookingID == review.BookingID {
			return model.ErrAlreadyReviewed
		}
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, model.ErrReviewNotFound
	}
	clone := *review
	return &clone, nil
}

func (r *fakeReviewRepo) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Review, error) {
	for _, review := range r.reviews {
		if review.BookingID == bookingID {
			clone := *review
			return &clone, nil
		}
	}
	return nil, model.ErrReviewNotFound
}

func (r *fakeReviewRepo) ListByCar(ctx context.Context, carID int) ([]*model.ReviewWithAuthor, error) {
	out := make([]*model.ReviewWithAuthor, 0)
	for _, review := range r.reviews {
		if review.CarID == carID {
			out = append(out, &model.ReviewWithAuthor{Review: *review, AuthorName: "Tester"})
		}
	}
	// Same ordering contract as the SQL repository
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeReviewRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Review, error) {
	out := make([]*model.Review, 0)
	for _, review := range r.reviews {
		if review.UserID == userID {
			clone := *review
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, review *model.Review) error {
	if _, ok := r.reviews[review.ID]; !ok {
		return model.ErrReviewNotFound
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.reviews[id]; !ok {
		return model.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) GetCarSummary(ctx context.Context, carID int) (*model.RatingSummary, error) {
	summary := &model.RatingSummary{CarID: carID}
	total := 0
	for _, review := range r.reviews {
		if review.CarID == carID {
			summary.ReviewCount++
			total += review.Rating
		}
	}
	if summary.ReviewCount > 0 {
		summary.AverageRating = float64(total) / float64(summary.ReviewCount)
	}
	return summary, nil
}

type fakeBookingReader struct {
	bookings map[uuid.UUID]*bookingmodel.Booking
}

func (f *fakeBookingReader) GetByID(ctx context.Context, id uuid.UUID) (*bookingmodel.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingmodel.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

type fakeCache struct {
	data map[string][]byte
	hits int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	if s, ok := dest.(*model.RatingSummary); ok && len(raw) > 0 {
		// Payload content does not matter for these tests
		*s = model.RatingSummary{CarID: 5, AverageRating: 4.5, ReviewCount: 2}
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.data[key] = []byte("cached")
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.data, key)
	}
	return nil
}

func (c *fakeCache) Ping(ctx context.Context) error { return nil }

// =====================================================
// HELPERS
// =====================================================

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	svc      *reviewService
	reviews  *fakeReviewRepo
	bookings *fakeBookingReader
	cache    *fakeCache
}

func newTestEnv() *testEnv {
	reviews := newFakeReviewRepo()
	bookings := &fakeBookingReader{bookings: make(map[uuid.UUID]*bookingmodel.Booking)}
	cacheClient := newFakeCache()

	svc := NewReviewService(reviews, bookings, cacheClient).(*reviewService)
	svc.now = func() time.Time { return testNow }

	return &testEnv{svc: svc, reviews: reviews, bookings: bookings, cache: cacheClient}
}

func (e *testEnv) addBooking(userID uuid.UUID, status bookingmodel.Status, returnDate time.Time) *bookingmodel.Booking {
	b := &bookingmodel.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		CarID:      5,
		CarName:    "Hyundai Creta",
		PickupDate: returnDate.AddDate(0, 0, -3),
		ReturnDate: returnDate,
		Status:     status,
	}
	e.bookings.bookings[b.ID] = b
	return b
}

func (e *testEnv) completedBooking(userID uuid.UUID) *bookingmodel.Booking {
	return e.addBooking(userID, bookingmodel.StatusConfirmed, testNow.AddDate(0, 0, -2))
}

func createRequest(bookingID uuid.UUID) model.CreateReviewRequest {
	return model.CreateReviewRequest{
		BookingID: bookingID.String(),
		Rating:    4,
		Comment:   "Smooth ride, clean car",
	}
}

// =====================================================
// CREATE
// =====================================================

func TestCreateReview(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	booking := env.completedBooking(userID)

	review, err := env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))
	require.NoError(t, err)

	assert.Equal(t, booking.ID, review.BookingID)
	assert.Equal(t, 5, review.CarID)
	assert.Equal(t, "Hyundai Creta", review.CarName)
	assert.Equal(t, 4, review.Rating)
	assert.Equal(t, testNow, review.CreatedAt)
}

func TestCreateReviewBookingNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.CreateReview(context.Background(), uuid.New(), createRequest(uuid.New()))

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeBookingNotFound, reviewErr.Code)
}

func TestCreateReviewRequiresOwnership(t *testing.T) {
	env := newTestEnv()
	booking := env.completedBooking(uuid.New())

	_, err := env.svc.CreateReview(context.Background(), uuid.New(), createRequest(booking.ID))

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeForbidden, reviewErr.Code)
}

func TestCreateReviewCancelledBookingBlocked(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	// Cancelled with return date in the past; cancellation still wins
	booking := env.addBooking(userID, bookingmodel.StatusCancelled, testNow.AddDate(0, 0, -2))

	_, err := env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeCancelledBooking, reviewErr.Code)
}

func TestCreateReviewBookingNotCompleted(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	booking := env.addBooking(userID, bookingmodel.StatusConfirmed, testNow.AddDate(0, 0, 2))

	_, err := env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeNotCompleted, reviewErr.Code)
}

func TestCreateReviewDuplicateBlocked(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	booking := env.completedBooking(userID)

	_, err := env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))
	require.NoError(t, err)

	_, err = env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeAlreadyReviewed, reviewErr.Code)
}

func TestCreateReviewValidation(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	booking := env.completedBooking(userID)

	req := createRequest(booking.ID)
	req.Rating = 6
	_, err := env.svc.CreateReview(context.Background(), userID, req)
	assert.Error(t, err)

	req = createRequest(booking.ID)
	req.Comment = ""
	_, err = env.svc.CreateReview(context.Background(), userID, req)
	assert.Error(t, err)
}

// =====================================================
// UPDATE
// =====================================================

func TestUpdateReviewPartialFields(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	booking := env.completedBooking(userID)

	created, err := env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))
	require.NoError(t, err)

	// Only the rating; zero-value comment keeps the old text
	updated, err := env.svc.UpdateReview(context.Background(), userID, created.ID, model.UpdateReviewRequest{
		Rating: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, created.Comment, updated.Comment)

	// Only the comment; zero-value rating keeps the last one
	updated, err = env.svc.UpdateReview(context.Background(), userID, created.ID, model.UpdateReviewRequest{
		Comment: "Changed my mind",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "Changed my mind", updated.Comment)
}

func TestUpdateReviewRejectsOutOfRangeRating(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	booking := env.completedBooking(userID)

	created, err := env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))
	require.NoError(t, err)

	_, err = env.svc.UpdateReview(context.Background(), userID, created.ID, model.UpdateReviewRequest{
		Rating: 9,
	})
	assert.Error(t, err)

	// Unchanged
	stored, err := env.reviews.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Rating)
}

func TestUpdateReviewOwnership(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	booking := env.completedBooking(userID)

	created, err := env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))
	require.NoError(t, err)

	_, err = env.svc.UpdateReview(context.Background(), uuid.New(), created.ID, model.UpdateReviewRequest{
		Rating: 1,
	})

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeForbidden, reviewErr.Code)
}

// =====================================================
// DELETE
// =====================================================

func TestDeleteReview(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	booking := env.completedBooking(userID)

	created, err := env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteReview(context.Background(), userID, created.ID))

	_, err = env.reviews.GetByID(context.Background(), created.ID)
	assert.Equal(t, model.ErrReviewNotFound, err)
}

func TestDeleteReviewOwnership(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	booking := env.completedBooking(userID)

	created, err := env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))
	require.NoError(t, err)

	err = env.svc.DeleteReview(context.Background(), uuid.New(), created.ID)

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeForbidden, reviewErr.Code)
}

func TestDeleteReviewNotFound(t *testing.T) {
	env := newTestEnv()

	err := env.svc.DeleteReview(context.Background(), uuid.New(), uuid.New())

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeReviewNotFound, reviewErr.Code)
}

// =====================================================
// LIST
// =====================================================

func (e *testEnv) seedReview(userID uuid.UUID, carID int, createdAt time.Time) *model.Review {
	review := &model.Review{
		ID:        uuid.New(),
		UserID:    userID,
		BookingID: uuid.New(),
		CarID:     carID,
		CarName:   "Hyundai Creta",
		Rating:    4,
		Comment:   "Smooth ride",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	e.reviews.reviews[review.ID] = review
	return review
}

func TestGetCarReviewsNewestFirst(t *testing.T) {
	env := newTestEnv()

	env.seedReview(uuid.New(), 5, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	env.seedReview(uuid.New(), 5, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	env.seedReview(uuid.New(), 5, time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC))
	// Another car never shows up in this listing
	env.seedReview(uuid.New(), 7, time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC))

	reviews, err := env.svc.GetCarReviews(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	assert.Equal(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), reviews[0].CreatedAt)
	assert.Equal(t, time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC), reviews[1].CreatedAt)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), reviews[2].CreatedAt)
}

func TestGetMyReviewsNewestFirst(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()

	env.seedReview(userID, 5, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	env.seedReview(userID, 7, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	env.seedReview(uuid.New(), 5, time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC))

	reviews, err := env.svc.GetMyReviews(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), reviews[0].CreatedAt)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), reviews[1].CreatedAt)
}

// =====================================================
// RATING SUMMARY CACHE
// =====================================================

func TestGetCarRatingSummaryCaches(t *testing.T) {
	env := newTestEnv()

	// Miss: computed from the repository and stored
	summary, err := env.svc.GetCarRatingSummary(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ReviewCount)
	assert.Len(t, env.cache.data, 1)

	// Hit: served from the cache
	_, err = env.svc.GetCarRatingSummary(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 1, env.cache.hits)
}

func TestCreateReviewInvalidatesSummary(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()
	booking := env.completedBooking(userID)

	_, err := env.svc.GetCarRatingSummary(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, env.cache.data, 1)

	_, err = env.svc.CreateReview(context.Background(), userID, createRequest(booking.ID))
	require.NoError(t, err)

	assert.Empty(t, env.cache.data)
}
