package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// CalculateTotalDays returns the number of billable days for a date range:
// ceil((return - pickup) / 24h), minimum 1. A same-day rental is one day.
func CalculateTotalDays(pickupDate, returnDate time.Time) int {
	days := int(math.Ceil(returnDate.Sub(pickupDate).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// CalculateTotalPrice returns dailyRate x totalDays.
func CalculateTotalPrice(dailyRate decimal.Decimal, totalDays int) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(int64(totalDays)))
}
