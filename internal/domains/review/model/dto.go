package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateReviewRequest submits a review against one of the caller's bookings.
// The body field is "bookingId"; responses expose the link as "booking".
type CreateReviewRequest struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookingID, validation.Required, is.UUID),
		validation.Field(&r.Rating, validation.Required, validation.Min(MinRating), validation.Max(MaxRating)),
		validation.Field(&r.Comment, validation.Required, validation.Length(1, 1000)),
	)
}

// UpdateReviewRequest edits an existing review. Zero values mean "leave as
// is": a rating of 0 or an empty comment keeps the stored value, so a client
// can change one field without resending the other.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating,
			validation.When(r.Rating != 0, validation.Min(MinRating), validation.Max(MaxRating)),
		),
		validation.Field(&r.Comment, validation.Length(0, 1000)),
	)
}

// RatingSummary is the aggregate shown on a car card.
type RatingSummary struct {
	CarID         int     `json:"carId"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}
