package cancel_booking

import (
	"github.com/petlink/PetLink-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(actor models.Actor) models.CancelBookingRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return models.CancelBookingRequest{
		Actor:              actor,
		CancellationReason: reason,
	}
}
