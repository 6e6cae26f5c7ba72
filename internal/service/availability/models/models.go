package models

import (
	"time"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/pkg/types"
)

// Роли действующих сторон
const (
	RoleVeterinary = "veterinary"
	RoleAdmin      = "admin"
)

// Actor действующая сторона запроса
type Actor struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the actor carries the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Request модели

// CreateWindowRequest запрос на создание окна доступности
type CreateWindowRequest struct {
	ProfessionalID      int64  `json:"professionalId"`
	DayOfWeek           int    `json:"dayOfWeek"` // 0 = воскресенье .. 6 = суббота
	StartTime           string `json:"startTime"` // "09:00"
	EndTime             string `json:"endTime"`   // "18:00"
	SlotIntervalMinutes int    `json:"slotIntervalMinutes"`
}

// UpdateWindowRequest запрос на изменение окна доступности
type UpdateWindowRequest struct {
	DayOfWeek           int    `json:"dayOfWeek"`
	StartTime           string `json:"startTime"`
	EndTime             string `json:"endTime"`
	SlotIntervalMinutes int    `json:"slotIntervalMinutes"`
}

// ToDomainWindow конвертирует запрос в domain модель
func (r *CreateWindowRequest) ToDomainWindow() (*domain.AvailabilityWindow, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.AvailabilityWindow{
		ProfessionalID:      r.ProfessionalID,
		DayOfWeek:           r.DayOfWeek,
		StartTime:           start,
		EndTime:             end,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
	}, nil
}

// ToDomainWindow конвертирует запрос в domain модель
func (r *UpdateWindowRequest) ToDomainWindow(professionalID int64) (*domain.AvailabilityWindow, error) {
	create := CreateWindowRequest{
		ProfessionalID:      professionalID,
		DayOfWeek:           r.DayOfWeek,
		StartTime:           r.StartTime,
		EndTime:             r.EndTime,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
	}
	return create.ToDomainWindow()
}

// Response модели

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID                  int64     `json:"id"`
	ProfessionalID      int64     `json:"professionalId"`
	DayOfWeek           int       `json:"dayOfWeek"`
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	SlotIntervalMinutes int       `json:"slotIntervalMinutes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// WindowListResponse ответ со списком окон доступности
type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
}

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:                  w.ID,
		ProfessionalID:      w.ProfessionalID,
		DayOfWeek:           w.DayOfWeek,
		StartTime:           w.StartTime.String(),
		EndTime:             w.EndTime.String(),
		SlotIntervalMinutes: w.SlotIntervalMinutes,
		CreatedAt:           w.CreatedAt,
		UpdatedAt:           w.UpdatedAt,
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.AvailabilityWindow) *WindowListResponse {
	resp := &WindowListResponse{
		Windows: make([]WindowResponse, 0, len(windows)),
	}

	for _, window := range windows {
		if windowResp := FromDomainWindow(window); windowResp != nil {
			resp.Windows = append(resp.Windows, *windowResp)
		}
	}

	return resp
}
