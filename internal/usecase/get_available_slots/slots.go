package get_available_slots

import (
	"sort"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/pkg/types"
)

// generateSlots генерирует слоты по окнам доступности одного дня недели.
//
// Для каждого окна кандидаты идут от start_time с шагом slot_interval_minutes,
// пока кандидат + длительность услуги помещается до end_time включительно.
// Хвост окна, в который услуга уже не влезает целиком, молча отбрасывается.
// Шаг окна и длительность услуги независимы: услуга 45 минут в окне с шагом
// 30 минут даёт слоты, перекрывающие соседние интервалы сетки
func generateSlots(
	windows []*domain.AvailabilityWindow,
	serviceDurationMinutes int,
	bookings []*domain.Booking,
) []domain.Slot {
	slots := make([]domain.Slot, 0)

	for _, window := range windows {
		for startMinutes := window.StartTime.Minutes(); startMinutes+serviceDurationMinutes <= window.EndTime.Minutes(); startMinutes += window.SlotIntervalMinutes {
			start, err := types.NewTimeStringFromMinutes(startMinutes)
			if err != nil {
				// Окно валидируется при записи, сюда не попадаем
				continue
			}

			slots = append(slots, domain.Slot{
				StartTime:       start,
				DurationMinutes: serviceDurationMinutes,
				Available:       !hasOverlappingBooking(start, serviceDurationMinutes, bookings),
			})
		}
	}

	// Окна не пересекаются по построению, но специалист может иметь
	// несколько окон в день - собираем общий список и сортируем по времени
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})

	return slots
}

// hasOverlappingBooking проверяет, пересекается ли интервал слота
// [start, start+duration) хотя бы с одним активным бронированием.
// Граничащие интервалы пересечением не считаются:
// бронирование 11:00-11:30 не блокирует слот 11:30
func hasOverlappingBooking(start types.TimeString, durationMinutes int, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		// Пропускаем завершённые и отменённые - они слот не занимают
		if !booking.IsActive() {
			continue
		}

		if booking.Overlaps(start, durationMinutes) {
			return true
		}
	}

	return false
}
