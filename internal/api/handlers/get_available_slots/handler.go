package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petlink/PetLink-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/petlink/PetLink-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgMissingServiceID      = "ID услуги обязателен"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgProfessionalNotFound  = "специалист не найден"
	msgServiceNotFound       = "услуга не найдена"
	msgInvalidInput          = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(professionalID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/available-slots - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /professionals/{id}/available-slots - Service not found: professional_id=%d, service_id=%d",
				professionalID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /professionals/{id}/available-slots - Failed to get slots: professional_id=%d, service_id=%d, error=%v",
				professionalID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /professionals/{id}/available-slots - Slots retrieved successfully: professional_id=%d, service_id=%d, slots_count=%d",
		professionalID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
