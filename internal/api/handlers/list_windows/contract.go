package list_windows

import (
	"context"

	"github.com/petlink/PetLink-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	List(ctx context.Context, professionalID int64) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
