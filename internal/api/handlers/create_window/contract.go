package create_window

import (
	"context"

	"github.com/petlink/PetLink-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Create(ctx context.Context, actor models.Actor, req models.CreateWindowRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
