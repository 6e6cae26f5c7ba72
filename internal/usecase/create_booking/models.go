package create_booking

import (
	"time"

	"github.com/petlink/PetLink-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ProfessionalID int64            // ID специалиста
	ClientID       int64            // ID клиента (владельца питомца)
	PetID          int64            // ID питомца
	ServiceID      int64            // ID услуги
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	ProfessionalID  int64
	ClientID        int64
	PetID           int64
	ServiceID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	AmountPaid      float64
	ServiceName     string
	ServicePrice    float64
	PetName         *string
	PetSpecies      *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
