package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testWindow(t *testing.T, start, end string, interval int) *domain.AvailabilityWindow {
	t.Helper()
	return &domain.AvailabilityWindow{
		ProfessionalID:      1,
		DayOfWeek:           1,
		StartTime:           mustTime(t, start),
		EndTime:             mustTime(t, end),
		SlotIntervalMinutes: interval,
	}
}

func slotTimes(slots []domain.Slot) []string {
	times := make([]string, len(slots))
	for i, s := range slots {
		times[i] = s.StartTime.String()
	}
	return times
}

func TestGenerateSlots_IntervalStepping(t *testing.T) {
	// Окно 08:00-09:00 с шагом 30 минут, услуга 30 минут:
	// помещаются 08:00 и 08:30
	windows := []*domain.AvailabilityWindow{testWindow(t, "08:00", "09:00", 30)}

	slots := generateSlots(windows, 30, nil)

	require.Len(t, slots, 2)
	assert.Equal(t, []string{"08:00", "08:30"}, slotTimes(slots))
	assert.True(t, slots[0].Available)
	assert.True(t, slots[1].Available)
	assert.Equal(t, 30, slots[0].DurationMinutes)
}

func TestGenerateSlots_TruncatesTail(t *testing.T) {
	// Та же сетка, но услуга 45 минут: 08:30+45 вылезает за 09:00,
	// остаётся только 08:00
	windows := []*domain.AvailabilityWindow{testWindow(t, "08:00", "09:00", 30)}

	slots := generateSlots(windows, 45, nil)

	require.Len(t, slots, 1)
	assert.Equal(t, "08:00", slots[0].StartTime.String())
	assert.Equal(t, 45, slots[0].DurationMinutes)
}

func TestGenerateSlots_ServiceLongerThanWindow(t *testing.T) {
	windows := []*domain.AvailabilityWindow{testWindow(t, "08:00", "09:00", 30)}

	slots := generateSlots(windows, 90, nil)

	assert.Empty(t, slots)
}

func TestGenerateSlots_BookedSlotStaysVisible(t *testing.T) {
	// Занятый слот возвращается с available=false, а не выбрасывается
	windows := []*domain.AvailabilityWindow{testWindow(t, "08:00", "09:00", 30)}
	bookings := []*domain.Booking{{
		StartTime:       mustTime(t, "08:00"),
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
	}}

	slots := generateSlots(windows, 30, bookings)

	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestGenerateSlots_TerminalBookingFreesSlot(t *testing.T) {
	windows := []*domain.AvailabilityWindow{testWindow(t, "08:00", "09:00", 30)}
	bookings := []*domain.Booking{
		{StartTime: mustTime(t, "08:00"), DurationMinutes: 30, Status: domain.StatusCanceled},
		{StartTime: mustTime(t, "08:30"), DurationMinutes: 30, Status: domain.StatusCompleted},
	}

	slots := generateSlots(windows, 30, bookings)

	require.Len(t, slots, 2)
	assert.True(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestGenerateSlots_TouchingBookingDoesNotConflict(t *testing.T) {
	// Бронирование 11:00-11:30 не блокирует слот 11:30
	windows := []*domain.AvailabilityWindow{testWindow(t, "11:00", "12:00", 30)}
	bookings := []*domain.Booking{{
		StartTime:       mustTime(t, "11:00"),
		DurationMinutes: 30,
		Status:          domain.StatusPending,
	}}

	slots := generateSlots(windows, 30, bookings)

	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestGenerateSlots_LongServiceOverlapsNeighbouringGrid(t *testing.T) {
	// Услуга 45 минут в сетке с шагом 30: слот 08:00 занят бронированием
	// 08:00-08:45, которое пересекает и кандидата 08:30
	windows := []*domain.AvailabilityWindow{testWindow(t, "08:00", "10:00", 30)}
	bookings := []*domain.Booking{{
		StartTime:       mustTime(t, "08:00"),
		DurationMinutes: 45,
		Status:          domain.StatusConfirmed,
	}}

	slots := generateSlots(windows, 45, bookings)

	require.Len(t, slots, 3) // 08:00, 08:30, 09:00
	assert.False(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestGenerateSlots_MultipleWindowsSorted(t *testing.T) {
	// Два окна одного дня собираются в общий отсортированный список
	windows := []*domain.AvailabilityWindow{
		testWindow(t, "14:00", "15:00", 30),
		testWindow(t, "09:00", "10:00", 30),
	}

	slots := generateSlots(windows, 30, nil)

	assert.Equal(t, []string{"09:00", "09:30", "14:00", "14:30"}, slotTimes(slots))
}

func TestGenerateSlots_NoWindows(t *testing.T) {
	slots := generateSlots(nil, 30, nil)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestValidateRequest(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, validateRequest(&Request{ProfessionalID: 1, ServiceID: 2, Date: date}))

	assert.ErrorIs(t, validateRequest(&Request{ProfessionalID: 0, ServiceID: 2, Date: date}), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{ProfessionalID: 1, ServiceID: -5, Date: date}), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{ProfessionalID: 1, ServiceID: 2}), ErrInvalidInput)
}
