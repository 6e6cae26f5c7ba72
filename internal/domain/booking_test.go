package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/PetLink-BookingService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to canceled", from: StatusPending, to: StatusCanceled, want: true},
		{name: "pending to completed skips confirmation", from: StatusPending, to: StatusCompleted, want: false},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, want: true},
		{name: "confirmed to canceled", from: StatusConfirmed, to: StatusCanceled, want: true},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusCanceled, want: false},
		{name: "canceled is terminal", from: StatusCanceled, to: StatusConfirmed, want: false},
		{name: "canceled cannot complete", from: StatusCanceled, to: StatusCompleted, want: false},
		{name: "completed cannot revert", from: StatusCompleted, to: StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_StatusPredicates(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	confirmed := &Booking{Status: StatusConfirmed}
	completed := &Booking{Status: StatusCompleted}
	canceled := &Booking{Status: StatusCanceled}

	assert.True(t, pending.IsActive())
	assert.True(t, confirmed.IsActive())
	assert.False(t, completed.IsActive())
	assert.False(t, canceled.IsActive())

	assert.False(t, pending.IsTerminal())
	assert.True(t, completed.IsTerminal())
	assert.True(t, canceled.IsTerminal())

	assert.True(t, pending.CanBeCancelled())
	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, canceled.CanBeCancelled())
}

func TestBooking_Overlaps(t *testing.T) {
	// Бронирование 10:00-10:30
	b := &Booking{
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 30,
		Status:          StatusConfirmed,
	}

	tests := []struct {
		name     string
		start    string
		duration int
		want     bool
	}{
		{name: "identical interval", start: "10:00", duration: 30, want: true},
		{name: "starts inside", start: "10:15", duration: 30, want: true},
		{name: "ends inside", start: "09:45", duration: 30, want: true},
		{name: "covers whole booking", start: "09:30", duration: 90, want: true},
		{name: "touching end does not conflict", start: "10:30", duration: 30, want: false},
		{name: "touching start does not conflict", start: "09:30", duration: 30, want: false},
		{name: "disjoint before", start: "08:00", duration: 30, want: false},
		{name: "disjoint after", start: "12:00", duration: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(mustTime(t, tt.start), tt.duration))
		})
	}
}

func TestBooking_EndTime(t *testing.T) {
	b := &Booking{
		StartTime:       mustTime(t, "15:30"),
		DurationMinutes: 45,
	}

	end, err := b.EndTime()
	require.NoError(t, err)
	assert.Equal(t, "16:15", end.String())
}
