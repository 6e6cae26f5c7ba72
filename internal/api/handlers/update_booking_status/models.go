package update_booking_status

import (
	"github.com/petlink/PetLink-BookingService/internal/service/bookings/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(actor models.Actor) models.TransitionRequest {
	return models.TransitionRequest{
		Actor:              actor,
		Status:             r.Status,
		CancellationReason: r.CancellationReason,
	}
}
