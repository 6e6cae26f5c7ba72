package domain

import "github.com/petlink/PetLink-BookingService/pkg/types"

// Slot represents a candidate start time for a service of a given
// duration on a specific date. Taken slots are flagged, not omitted,
// so callers can render the full grid.
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Available       bool
}
