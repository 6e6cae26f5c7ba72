package update_booking_status

import (
	"context"

	"github.com/petlink/PetLink-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, bookingID int64, req models.TransitionRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
