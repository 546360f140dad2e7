package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeriveEffectiveStatus(t *testing.T) {
	now := date("2025-06-15")

	tests := []struct {
		name   string
		status Status
		pickup string
		ret    string
		want   EffectiveStatus
	}{
		{
			name:   "cancelled overrides everything",
			status: StatusCancelled,
			pickup: "2025-06-01",
			ret:    "2025-06-05",
			want:   EffectiveCancelled,
		},
		{
			name:   "cancelled future booking still cancelled",
			status: StatusCancelled,
			pickup: "2025-07-01",
			ret:    "2025-07-05",
			want:   EffectiveCancelled,
		},
		{
			name:   "return date passed",
			status: StatusConfirmed,
			pickup: "2025-06-01",
			ret:    "2025-06-05",
			want:   EffectiveCompleted,
		},
		{
			name:   "persisted completed flag",
			status: StatusCompleted,
			pickup: "2025-06-01",
			ret:    "2025-06-05",
			want:   EffectiveCompleted,
		},
		{
			name:   "pickup in the future",
			status: StatusConfirmed,
			pickup: "2025-07-01",
			ret:    "2025-07-05",
			want:   EffectiveUpcoming,
		},
		{
			name:   "rental in progress",
			status: StatusConfirmed,
			pickup: "2025-06-10",
			ret:    "2025-06-20",
			want:   EffectiveActive,
		},
		{
			name:   "pickup today counts as active",
			status: StatusConfirmed,
			pickup: "2025-06-15",
			ret:    "2025-06-20",
			want:   EffectiveActive,
		},
		{
			name:   "return today not yet completed",
			status: StatusConfirmed,
			pickup: "2025-06-10",
			ret:    "2025-06-15",
			want:   EffectiveActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{
				Status:     tt.status,
				PickupDate: date(tt.pickup),
				ReturnDate: date(tt.ret),
			}
			assert.Equal(t, tt.want, DeriveEffectiveStatus(b, now))
		})
	}
}

func TestIsCompleted(t *testing.T) {
	now := date("2025-06-15")

	t.Run("past return date", func(t *testing.T) {
		b := &Booking{Status: StatusConfirmed, ReturnDate: date("2025-06-10")}
		assert.True(t, b.IsCompleted(now))
	})

	t.Run("persisted completed", func(t *testing.T) {
		b := &Booking{Status: StatusCompleted, ReturnDate: date("2025-06-10")}
		assert.True(t, b.IsCompleted(now))
	})

	t.Run("ongoing rental", func(t *testing.T) {
		b := &Booking{Status: StatusConfirmed, ReturnDate: date("2025-06-20")}
		assert.False(t, b.IsCompleted(now))
	})

	t.Run("cancelled never completes even after return date", func(t *testing.T) {
		b := &Booking{Status: StatusCancelled, ReturnDate: date("2025-06-10")}
		assert.False(t, b.IsCompleted(now))
	})
}
