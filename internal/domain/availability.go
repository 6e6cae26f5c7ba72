package domain

import (
	"time"

	"github.com/petlink/PetLink-BookingService/pkg/types"
)

// AvailabilityWindow represents a recurring weekly time range during
// which a professional accepts bookings. Windows of one professional on
// the same weekday must not overlap (enforced at write time).
type AvailabilityWindow struct {
	ID                  int64
	ProfessionalID      int64
	DayOfWeek           int // 0 = Sunday .. 6 = Saturday
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotIntervalMinutes int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// LengthMinutes returns the window length.
func (w *AvailabilityWindow) LengthMinutes() int {
	return w.EndTime.Minutes() - w.StartTime.Minutes()
}

// Fits reports whether a service of the given duration starting at start
// runs entirely inside the window.
func (w *AvailabilityWindow) Fits(start types.TimeString, durationMinutes int) bool {
	if start.IsBefore(w.StartTime) {
		return false
	}
	return start.Minutes()+durationMinutes <= w.EndTime.Minutes()
}

// AlignsWithInterval reports whether start lies on the window's slot grid.
func (w *AvailabilityWindow) AlignsWithInterval(start types.TimeString) bool {
	offset := start.Minutes() - w.StartTime.Minutes()
	return offset >= 0 && offset%w.SlotIntervalMinutes == 0
}

// OverlapsWindow reports whether two windows of the same weekday share
// any time. Touching boundaries do not count.
func (w *AvailabilityWindow) OverlapsWindow(other *AvailabilityWindow) bool {
	if w.DayOfWeek != other.DayOfWeek {
		return false
	}
	return w.StartTime.IsBefore(other.EndTime) && w.EndTime.IsAfter(other.StartTime)
}
