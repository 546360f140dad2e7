package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrCarNotFound = errors.New("car not found")

// Car is a vehicle listing from the read-only catalog.
// The booking core resolves the daily rate here at creation time and
// snapshots name/type/image onto the booking.
type Car struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Image       string          `json:"image"`
	PricePerDay decimal.Decimal `json:"price"` // INR per day

	// Display specs
	Seats        int    `json:"seats"`
	Fuel         string `json:"fuel"`
	Transmission string `json:"transmission"`
	Mileage      string `json:"mileage"`
}
