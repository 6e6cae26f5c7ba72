package delete_window

import (
	"context"

	"github.com/petlink/PetLink-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Delete(ctx context.Context, actor models.Actor, windowID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
