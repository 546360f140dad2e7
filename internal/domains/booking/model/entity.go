package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

// Booking is a user's reservation of a vehicle for a date range.
// Car fields are snapshotted from the catalog at creation time so the
// displayed details survive catalog changes. Pricing is computed once at
// creation and never recomputed on edit.
type Booking struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"` // immutable after creation

	// Car snapshot
	CarID    int    `json:"carId"`
	CarName  string `json:"carName"`
	CarType  string `json:"carType"`
	CarImage string `json:"carImage"`

	PickupDate     time.Time `json:"pickupDate"`
	ReturnDate     time.Time `json:"returnDate"`
	PickupLocation string    `json:"pickupLocation"`

	// Contact details; only PickupLocation and Phone are mutable post-creation
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	TotalDays  int             `json:"totalDays"`
	TotalPrice decimal.Decimal `json:"totalPrice"`

	Status        Status        `json:"status"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TransactionID string        `json:"transactionId"` // from the simulated payment step, immutable

	CreatedAt time.Time `json:"createdAt"`
}

// IsOwnedBy reports whether the booking belongs to the given user.
func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.UserID == userID
}
