package update_window

import (
	"context"

	"github.com/petlink/PetLink-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Update(ctx context.Context, actor models.Actor, windowID int64, req models.UpdateWindowRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
