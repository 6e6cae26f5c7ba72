package create_booking

import (
	"fmt"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.PetID <= 0 {
		return fmt.Errorf("%w: petID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotAgainstWindows проверяет, что запрошенный слот генерируем:
// лежит на сетке какого-то окна и услуга помещается до его закрытия.
// Окна не пересекаются, поэтому достаточно первого подходящего
func validateSlotAgainstWindows(
	windows []*domain.AvailabilityWindow,
	start types.TimeString,
	serviceDurationMinutes int,
) error {
	for _, window := range windows {
		if window.Fits(start, serviceDurationMinutes) && window.AlignsWithInterval(start) {
			return nil
		}
	}
	return ErrInvalidTimeSlot
}
