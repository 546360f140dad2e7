package model

import "time"

// EffectiveStatus is the display state derived from current time vs. the
// stored dates. It is not persisted; "completed" in the database is only an
// optimization written by the background sweep.
type EffectiveStatus string

const (
	EffectiveUpcoming  EffectiveStatus = "Upcoming"
	EffectiveActive    EffectiveStatus = "Active"
	EffectiveCompleted EffectiveStatus = "Completed"
	EffectiveCancelled EffectiveStatus = "Cancelled"
)

// DeriveEffectiveStatus is the single source of truth for the display rule.
// Review eligibility uses the same derivation, so the two can never diverge.
//
//	cancelled                 -> Cancelled (terminal, overrides time)
//	returnDate < now          -> Completed
//	pickupDate > now          -> Upcoming
//	otherwise                 -> Active
func DeriveEffectiveStatus(b *Booking, now time.Time) EffectiveStatus {
	if b.Status == StatusCancelled {
		return EffectiveCancelled
	}
	if b.Status == StatusCompleted || b.ReturnDate.Before(now) {
		return EffectiveCompleted
	}
	if b.PickupDate.After(now) {
		return EffectiveUpcoming
	}
	return EffectiveActive
}

// IsCompleted reports whether the booking counts as completed for review
// eligibility: either explicitly marked, or its return date has passed.
// Cancelled bookings are never completed.
func (b *Booking) IsCompleted(now time.Time) bool {
	if b.Status == StatusCancelled {
		return false
	}
	return b.Status == StatusCompleted || b.ReturnDate.Before(now)
}
