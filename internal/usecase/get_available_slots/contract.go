package get_available_slots

import (
	"context"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/internal/integrations/profileservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByProfessionalWithFilter получает бронирования специалиста на конкретную дату
	GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalBookingsFilter) ([]*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	// ListByProfessionalAndDay получает окна специалиста на день недели (0=воскресенье..6=суббота)
	ListByProfessionalAndDay(ctx context.Context, professionalID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*profileservice.Professional, error)
	GetService(ctx context.Context, professionalID, serviceID int64) (*profileservice.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
