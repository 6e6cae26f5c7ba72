package domain

// Business validation constants
const (
	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday

	MinSlotIntervalMinutes = 10
	MaxSlotIntervalMinutes = 120

	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, занимающих слот специалиста
// Используется при подсчёте доступности
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses список статусов, из которых переходы запрещены
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCanceled,
}
