package create_booking

import (
	"context"
	"time"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/internal/infra/events"
	"github.com/petlink/PetLink-BookingService/internal/integrations/profileservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalBookingsFilter) ([]*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	ListByProfessionalAndDay(ctx context.Context, professionalID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error)
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*profileservice.Professional, error)
	GetService(ctx context.Context, professionalID, serviceID int64) (*profileservice.Service, error)
	GetPet(ctx context.Context, clientID, petID int64) (*profileservice.Pet, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event events.BookingCreated)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
