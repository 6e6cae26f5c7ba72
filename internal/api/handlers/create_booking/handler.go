package create_booking

import (
	"errors"
	"net/http"

	"github.com/petlink/PetLink-BookingService/internal/api/handlers"
	"github.com/petlink/PetLink-BookingService/internal/api/middleware"
	createBooking "github.com/petlink/PetLink-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgSlotConflict         = "выбранный временной слот уже занят"
	msgProfessionalNotFound = "специалист не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgPetNotFound          = "питомец не найден"
	msgNoAvailabilityWindow = "у специалиста нет расписания на этот день недели"
	msgInvalidTimeSlot      = "время начала не совпадает с сеткой слотов или услуга не помещается в окно"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Клиент берётся из контекста аутентификации, не из тела запроса
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: client_id=%d, professional_id=%d, date=%s, time=%s",
				clientID, req.ProfessionalID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrProfessionalNotFound):
			h.logger.Warn("POST /bookings - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: professional_id=%d, service_id=%d",
				req.ProfessionalID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrPetNotFound):
			h.logger.Warn("POST /bookings - Pet not found: client_id=%d, pet_id=%d", clientID, req.PetID)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createBooking.ErrNoAvailabilityWindow):
			h.logger.Warn("POST /bookings - No availability window: professional_id=%d, date=%s",
				req.ProfessionalID, req.BookingDate)
			handlers.RespondNotFound(w, msgNoAvailabilityWindow)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: professional_id=%d, date=%s, time=%s",
				req.ProfessionalID, req.BookingDate, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, professional_id=%d, error=%v",
				clientID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, professional_id=%d",
		result.ID, clientID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
