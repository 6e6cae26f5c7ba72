package create_booking

import (
	"time"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	createBooking "github.com/petlink/PetLink-BookingService/internal/usecase/create_booking"
	"github.com/petlink/PetLink-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProfessionalID int64   `json:"professionalId"`
	PetID          int64   `json:"petId"`
	ServiceID      int64   `json:"serviceId"`
	BookingDate    string  `json:"bookingDate"` // "2026-09-15"
	StartTime      string  `json:"startTime"`   // "10:00"
	Notes          *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	ProfessionalID  int64   `json:"professionalId"`
	ClientID        int64   `json:"clientId"`
	PetID           int64   `json:"petId"`
	ServiceID       int64   `json:"serviceId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	AmountPaid      float64 `json:"amountPaid"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	PetName         *string `json:"petName,omitempty"`
	PetSpecies      *string `json:"petSpecies,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ProfessionalID: r.ProfessionalID,
		ClientID:       clientID,
		PetID:          r.PetID,
		ServiceID:      r.ServiceID,
		Date:           bookingDate,
		StartTime:      startTime,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ProfessionalID:  resp.ProfessionalID,
		ClientID:        resp.ClientID,
		PetID:           resp.PetID,
		ServiceID:       resp.ServiceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		AmountPaid:      resp.AmountPaid,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		PetName:         resp.PetName,
		PetSpecies:      resp.PetSpecies,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
