package availability

import (
	"context"
	"time"

	"github.com/petlink/PetLink-BookingService/internal/domain"
)

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error)
	ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.AvailabilityWindow, error)
	ListByProfessionalAndDay(ctx context.Context, professionalID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error)
	Update(ctx context.Context, id int64, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований.
// Нужен для проверки, что изменение расписания не ломает
// уже существующие активные записи
type BookingRepository interface {
	GetActiveByProfessionalAndWeekday(ctx context.Context, professionalID int64, fromDate time.Time, dayOfWeek int) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
