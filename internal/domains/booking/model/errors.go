package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeBookingNotFound = "BKG001"
	ErrCodeForbidden       = "BKG002"
	ErrCodePriceMismatch   = "BKG003"
	ErrCodeNotCancelled    = "BKG004"
	ErrCodeInvalidDates    = "BKG005"
	ErrCodeCarNotFound     = "BKG006"
)

// Errors
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("not authorized for this booking")
	ErrPriceMismatch   = errors.New("price does not match the catalog rate")
	ErrNotCancelled    = errors.New("only cancelled bookings can be deleted")
	ErrInvalidDates    = errors.New("return date must be on or after pickup date")
	ErrCarNotFound     = errors.New("car not found in catalog")
)

// BookingError custom error type
type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	return e.Message
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewBookingNotFoundError() *BookingError {
	return &BookingError{
		Code:    ErrCodeBookingNotFound,
		Message: "Booking not found",
		Err:     ErrBookingNotFound,
	}
}

func NewForbiddenError() *BookingError {
	return &BookingError{
		Code:    ErrCodeForbidden,
		Message: "You are not authorized to manage this booking",
		Err:     ErrForbidden,
	}
}

func NewPriceMismatchError(expectedDays int, expectedPrice string) *BookingError {
	return &BookingError{
		Code: ErrCodePriceMismatch,
		Message: fmt.Sprintf(
			"Submitted total does not match the catalog rate (expected %d day(s), INR %s)",
			expectedDays, expectedPrice),
		Err: ErrPriceMismatch,
	}
}

func NewNotCancelledError() *BookingError {
	return &BookingError{
		Code:    ErrCodeNotCancelled,
		Message: "Only cancelled bookings can be deleted",
		Err:     ErrNotCancelled,
	}
}

func NewInvalidDatesError() *BookingError {
	return &BookingError{
		Code:    ErrCodeInvalidDates,
		Message: "Return date must be on or after pickup date",
		Err:     ErrInvalidDates,
	}
}

func NewCarNotFoundError() *BookingError {
	return &BookingError{
		Code:    ErrCodeCarNotFound,
		Message: "Car not found in catalog",
		Err:     ErrCarNotFound,
	}
}
