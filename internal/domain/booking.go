package domain

import (
	"time"

	"github.com/petlink/PetLink-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCanceled  BookingStatus = "canceled"
)

// CancelledBy identifies which party cancelled a booking
type CancelledBy string

const (
	CancelledByClient       CancelledBy = "client"
	CancelledByProfessional CancelledBy = "professional"
)

// Booking represents a committed appointment between a client's pet and
// a veterinary professional. Bookings are never physically deleted:
// cancellation is a status, so dispute mediation keeps full history.
type Booking struct {
	ID              int64
	ProfessionalID  int64
	ClientID        int64
	PetID           int64
	ServiceID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus
	AmountPaid      float64

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	PetName      *string
	PetSpecies   *string
	Notes        *string

	CancellationReason *string
	CancelledBy        *CancelledBy
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time interval
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transition is allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCanceled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether the booking may move to the target status.
// The lifecycle is pending → confirmed → completed, with cancellation
// allowed from pending and confirmed. Completed and canceled are terminal.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCanceled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCanceled
	default:
		return false
	}
}

// EndTime returns the time the booking's interval closes
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// Overlaps reports whether the booking's [start, start+duration) interval
// intersects the given interval. Touching boundaries do not count.
func (b *Booking) Overlaps(start types.TimeString, durationMinutes int) bool {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	bookingEnd, err := b.EndTime()
	if err != nil {
		return false
	}
	return b.StartTime.IsBefore(end) && bookingEnd.IsAfter(start)
}

// ProfessionalBookingsFilter фильтр для получения бронирований специалиста
type ProfessionalBookingsFilter struct {
	ProfessionalID  int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли завершённые и отменённые бронирования
}
