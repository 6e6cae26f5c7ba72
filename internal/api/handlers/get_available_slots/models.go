package get_available_slots

import (
	"time"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	getAvailableSlots "github.com/petlink/PetLink-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	ProfessionalID  int64           `json:"professionalId"`
	ServiceID       int64           `json:"serviceId"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ProfessionalID:  resp.ProfessionalID,
		ServiceID:       resp.ServiceID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(professionalID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	}, nil
}
