package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"karzone-backend/internal/domains/review/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

// isUniqueViolation reports whether err is a Postgres unique
// constraint violation (SQLSTATE 23505) as surfaced by pgx.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const reviewColumns = `
	id, user_id, booking_id, car_id, car_name,
	rating, comment, created_at, updated_at
`

func scanReview(row pgx.Row) (*model.Review, error) {
	review := &model.Review{}
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.BookingID,
		&review.CarID,
		&review.CarName,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (
			id, user_id, booking_id, car_id, car_name,
			rating, comment, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.BookingID,
		review.CarID,
		review.CarName,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		// One review per booking; the unique index is the backstop
		if isUniqueViolation(err) {
			return model.ErrAlreadyReviewed
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// =====================================================
// GET BY BOOKING
// =====================================================

func (r *postgresReviewRepository) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE booking_id = $1`

	review, err := scanReview(r.pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// =====================================================
// LIST BY CAR
// =====================================================

func (r *postgresReviewRepository) ListByCar(ctx context.Context, carID int) ([]*model.ReviewWithAuthor, error) {
	query := `
		SELECT
			r.id, r.user_id, r.booking_id, r.car_id, r.car_name,
			r.rating, r.comment, r.created_at, r.updated_at,
			u.full_name
		FROM reviews r
		INNER JOIN users u ON u.id = r.user_id
		WHERE r.car_id = $1
		ORDER BY r.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, carID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*model.ReviewWithAuthor, 0)
	for rows.Next() {
		review := &model.ReviewWithAuthor{}
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.BookingID,
			&review.CarID,
			&review.CarName,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.AuthorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviews, nil
}

// =====================================================
// LIST BY USER
// =====================================================

func (r *postgresReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*model.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviews, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresReviewRepository) Update(ctx context.Context, review *model.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Comment,
		review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

// =====================================================
// RATING SUMMARY
// =====================================================

func (r *postgresReviewRepository) GetCarSummary(ctx context.Context, carID int) (*model.RatingSummary, error) {
	query := `
		SELECT
			COUNT(*) AS review_count,
			COALESCE(ROUND(AVG(rating)::numeric, 1), 0) AS average_rating
		FROM reviews
		WHERE car_id = $1
	`

	summary := &model.RatingSummary{CarID: carID}
	err := r.pool.QueryRow(ctx, query, carID).Scan(
		&summary.ReviewCount,
		&summary.AverageRating,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating summary: %w", err)
	}

	return summary, nil
}
