package bookings

import (
	"context"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/internal/infra/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, cancelledBy domain.CancelledBy, reason string) error
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishBookingStatusChanged(ctx context.Context, event events.BookingStatusChanged)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
