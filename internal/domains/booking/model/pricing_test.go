package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalDays(t *testing.T) {
	tests := []struct {
		name   string
		pickup string
		ret    string
		want   int
	}{
		{"three full days", "2025-01-10", "2025-01-13", 3},
		{"single day", "2025-01-10", "2025-01-11", 1},
		{"same day counts as one", "2025-01-10", "2025-01-10", 1},
		{"across month boundary", "2025-01-30", "2025-02-02", 3},
		{"week long", "2025-03-01", "2025-03-08", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotalDays(date(tt.pickup), date(tt.ret)))
		})
	}
}

func TestCalculateTotalDaysPartialDayRoundsUp(t *testing.T) {
	pickup := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)
	ret := time.Date(2025, 1, 12, 18, 0, 0, 0, time.UTC)

	// 2 days 8 hours bills as 3 days
	assert.Equal(t, 3, CalculateTotalDays(pickup, ret))
}

func TestCalculateTotalPrice(t *testing.T) {
	rate := decimal.NewFromInt(5000)

	assert.True(t, decimal.NewFromInt(15000).Equal(CalculateTotalPrice(rate, 3)))
	assert.True(t, decimal.NewFromInt(5000).Equal(CalculateTotalPrice(rate, 1)))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-01-10")
	assert.NoError(t, err)
	assert.Equal(t, date("2025-01-10"), parsed)

	_, err = ParseDate("10/01/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}
