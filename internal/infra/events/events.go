package events

import "time"

// Имена каналов, в которые публикуются события для коллабораторов
// (уведомления, real-time каналы)
const (
	ChannelBookingCreated       = "bookings.created"
	ChannelBookingStatusChanged = "bookings.status_changed"
)

// BookingCreated событие успешного коммита бронирования
type BookingCreated struct {
	BookingID      int64     `json:"bookingId"`
	ProfessionalID int64     `json:"professionalId"`
	ClientID       int64     `json:"clientId"`
	BookingDate    string    `json:"bookingDate"` // YYYY-MM-DD
	StartTime      string    `json:"startTime"`   // HH:MM
	OccurredAt     time.Time `json:"occurredAt"`
}

// BookingStatusChanged событие перехода статуса бронирования
type BookingStatusChanged struct {
	BookingID      int64     `json:"bookingId"`
	ProfessionalID int64     `json:"professionalId"`
	ClientID       int64     `json:"clientId"`
	OldStatus      string    `json:"oldStatus"`
	NewStatus      string    `json:"newStatus"`
	OccurredAt     time.Time `json:"occurredAt"`
}
