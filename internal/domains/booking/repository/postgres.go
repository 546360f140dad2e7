package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"karzone-backend/internal/domains/booking/model"
)

type postgresBookingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &postgresBookingRepository{pool: pool}
}

const bookingColumns = `
	id, user_id, car_id, car_name, car_type, car_image,
	pickup_date, return_date, pickup_location,
	full_name, email, phone,
	total_days, total_price,
	status, payment_method, transaction_id, created_at
`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	b := &model.Booking{}
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.CarID,
		&b.CarName,
		&b.CarType,
		&b.CarImage,
		&b.PickupDate,
		&b.ReturnDate,
		&b.PickupLocation,
		&b.FullName,
		&b.Email,
		&b.Phone,
		&b.TotalDays,
		&b.TotalPrice,
		&b.Status,
		&b.PaymentMethod,
		&b.TransactionID,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, car_id, car_name, car_type, car_image,
			pickup_date, return_date, pickup_location,
			full_name, email, phone,
			total_days, total_price,
			status, payment_method, transaction_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12,
			$13, $14,
			$15, $16, $17, $18
		)
	`

	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.CarID,
		booking.CarName,
		booking.CarType,
		booking.CarImage,
		booking.PickupDate,
		booking.ReturnDate,
		booking.PickupLocation,
		booking.FullName,
		booking.Email,
		booking.Phone,
		booking.TotalDays,
		booking.TotalPrice,
		booking.Status,
		booking.PaymentMethod,
		booking.TransactionID,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresBookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, nil
}

// =====================================================
// LIST BY USER
// =====================================================

func (r *postgresBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return bookings, nil
}

// =====================================================
// UPDATES
// =====================================================

func (r *postgresBookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookingNotFound
	}

	return nil
}

func (r *postgresBookingRepository) UpdateContact(ctx context.Context, id uuid.UUID, pickupLocation, phone string) error {
	query := `UPDATE bookings SET pickup_location = $1, phone = $2 WHERE id = $3`

	tag, err := r.pool.Exec(ctx, query, pickupLocation, phone, id)
	if err != nil {
		return fmt.Errorf("failed to update booking contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookingNotFound
	}

	return nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresBookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookingNotFound
	}

	return nil
}

// =====================================================
// COMPLETION SWEEP
// =====================================================

func (r *postgresBookingRepository) CompletePastBookings(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE status = $2 AND return_date < $3
	`

	tag, err := r.pool.Exec(ctx, query, model.StatusCompleted, model.StatusConfirmed, now)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past bookings: %w", err)
	}

	return tag.RowsAffected(), nil
}
