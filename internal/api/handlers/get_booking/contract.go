package get_booking

import (
	"context"

	"github.com/petlink/PetLink-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, actor models.Actor, bookingID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
