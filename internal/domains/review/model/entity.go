package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating+comment a user attaches to exactly one of their
// completed bookings. Car fields are denormalized from the booking at
// creation time.
type Review struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	BookingID uuid.UUID `json:"booking"`

	CarID   int    `json:"carId"`
	CarName string `json:"carName"`

	Rating  int    `json:"rating"` // 1-5
	Comment string `json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewWithAuthor adds the reviewer's display name for the public car page.
type ReviewWithAuthor struct {
	Review
	AuthorName string `json:"authorName"`
}
