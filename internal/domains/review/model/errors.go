package model

import "errors"

// Error codes
const (
	ErrCodeReviewNotFound   = "REV001"
	ErrCodeAlreadyReviewed  = "REV002"
	ErrCodeNotCompleted     = "REV003"
	ErrCodeCancelledBooking = "REV004"
	ErrCodeForbidden        = "REV005"
	ErrCodeBookingNotFound  = "REV006"
)

// Errors
var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrAlreadyReviewed  = errors.New("booking already reviewed")
	ErrNotCompleted     = errors.New("booking not completed")
	ErrCancelledBooking = errors.New("cancelled bookings cannot be reviewed")
	ErrForbidden        = errors.New("not authorized for this review")
	ErrBookingNotFound  = errors.New("booking not found")
)

// ReviewError custom error type
type ReviewError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewReviewNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeReviewNotFound,
		Message: "Review not found",
		Err:     ErrReviewNotFound,
	}
}

func NewAlreadyReviewedError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeAlreadyReviewed,
		Message: "You have already reviewed this booking",
		Err:     ErrAlreadyReviewed,
	}
}

func NewNotCompletedError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeNotCompleted,
		Message: "Can only review completed bookings",
		Err:     ErrNotCompleted,
	}
}

func NewCancelledBookingError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeCancelledBooking,
		Message: "Cancelled bookings cannot be reviewed",
		Err:     ErrCancelledBooking,
	}
}

func NewForbiddenError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeForbidden,
		Message: "You are not authorized to manage this review",
		Err:     ErrForbidden,
	}
}

func NewBookingNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeBookingNotFound,
		Message: "Booking not found",
		Err:     ErrBookingNotFound,
	}
}
