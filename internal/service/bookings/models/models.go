package models

import (
	"errors"
	"time"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/pkg/ptr"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidRole возвращается при некорректной роли
	ErrInvalidRole = errors.New("invalid actor role")
)

// Роли действующих сторон, выдаются Identity провайдером
const (
	RoleTutor      = "tutor"
	RoleVeterinary = "veterinary"
	RoleAdmin      = "admin"
)

// Actor действующая сторона запроса: аутентифицированный пользователь
// и его роль. Передаётся явно в каждый вызов - сервис не держит
// глобального состояния сессии
type Actor struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the actor carries the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Actor              Actor  `json:"actor"`
	CancellationReason string `json:"cancellationReason"`
}

// TransitionRequest запрос на переход статуса бронирования
type TransitionRequest struct {
	Actor              Actor   `json:"actor"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"` // Только для status=canceled
}

// GetClientBookingsRequest запрос на получение бронирований клиента
type GetClientBookingsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// GetProfessionalBookingsRequest запрос на получение бронирований специалиста
type GetProfessionalBookingsRequest struct {
	ProfessionalID  int64      `json:"professionalId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить завершённые и отменённые
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetProfessionalBookingsRequest) ToDomainFilter() (domain.ProfessionalBookingsFilter, error) {
	filter := domain.ProfessionalBookingsFilter{
		ProfessionalID:  r.ProfessionalID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	ProfessionalID  int64   `json:"professionalId"`
	ClientID        int64   `json:"clientId"`
	PetID           int64   `json:"petId"`
	ServiceID       int64   `json:"serviceId"`
	BookingDate     string  `json:"bookingDate"` // "2026-09-15"
	StartTime       string  `json:"startTime"`   // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	AmountPaid      float64 `json:"amountPaid"`

	// Денормализованные данные
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	PetName      *string `json:"petName,omitempty"`
	PetSpecies   *string `json:"petSpecies,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledBy        *string `json:"cancelledBy,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		ProfessionalID:     b.ProfessionalID,
		ClientID:           b.ClientID,
		PetID:              b.PetID,
		ServiceID:          b.ServiceID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Status:             string(b.Status),
		AmountPaid:         b.AmountPaid,
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		PetName:            b.PetName,
		PetSpecies:         b.PetSpecies,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledBy != nil {
		resp.CancelledBy = ptr.Ptr(string(*b.CancelledBy))
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(b.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCanceled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
