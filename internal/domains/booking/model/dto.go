package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date wire format used by the storefront.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date from the wire.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateBookingRequest carries everything the storefront sends at checkout.
// The client-computed totals are still required on the wire, but the service
// recomputes and verifies them against the catalog rate.
type CreateBookingRequest struct {
	CarID          int             `json:"carId"`
	CarName        string          `json:"carName"`
	CarType        string          `json:"carType"`
	CarImage       string          `json:"carImage"`
	PickupDate     string          `json:"pickupDate"`
	ReturnDate     string          `json:"returnDate"`
	PickupLocation string          `json:"pickupLocation"`
	FullName       string          `json:"fullName"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	TotalDays      int             `json:"totalDays"`
	PaymentMethod  string          `json:"paymentMethod"`
	TransactionID  string          `json:"transactionId"`
}

func (r CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CarID, validation.Required, validation.Min(1)),
		validation.Field(&r.CarName, validation.Required),
		validation.Field(&r.CarType, validation.Required),
		validation.Field(&r.CarImage, validation.Required),
		validation.Field(&r.PickupDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.ReturnDate, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.PickupLocation, validation.Required),
		validation.Field(&r.FullName, validation.Required, validation.Length(2, 255)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Phone, validation.Required, validation.Length(7, 20)),
		validation.Field(&r.TotalDays, validation.Required, validation.Min(1)),
		validation.Field(&r.PaymentMethod, validation.Required,
			validation.In(string(PaymentCard), string(PaymentUPI))),
		validation.Field(&r.TransactionID, validation.Required),
	)
}

// UpdateBookingRequest is the partial-update value object for a booking.
// Only pickup location and phone are mutable; other fields are not
// representable here at all.
type UpdateBookingRequest struct {
	PickupLocation *string `json:"pickupLocation"`
	Phone          *string `json:"phone"`
}

func (r UpdateBookingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PickupLocation, validation.NilOrNotEmpty),
		validation.Field(&r.Phone, validation.NilOrNotEmpty, validation.Length(7, 20)),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// BookingResponse is a booking plus its derived display status. Clients must
// not trust the persisted status for display; the server derives it for them.
type BookingResponse struct {
	Booking
	DisplayStatus EffectiveStatus `json:"displayStatus"`
}

func NewBookingResponse(b *Booking, now time.Time) BookingResponse {
	return BookingResponse{
		Booking:       *b,
		DisplayStatus: DeriveEffectiveStatus(b, now),
	}
}
