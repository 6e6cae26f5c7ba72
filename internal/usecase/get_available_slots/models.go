package get_available_slots

import (
	"time"

	"github.com/petlink/PetLink-BookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID int64     // ID специалиста
	ServiceID      int64     // ID услуги (определяет длительность)
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time     // Дата, на которую запрашивались слоты
	ProfessionalID  int64         // ID специалиста
	ServiceID       int64         // ID услуги
	DurationMinutes int           // Длительность услуги
	Slots           []domain.Slot // Упорядоченный список слотов с флагом доступности
}
