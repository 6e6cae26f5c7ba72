package list_windows

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petlink/PetLink-BookingService/internal/api/handlers"
	"github.com/petlink/PetLink-BookingService/internal/service/availability"
)

const (
	msgInvalidProfessionalID = "некорректный ID специалиста"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/availability-windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/availability-windows - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	result, err := h.service.List(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrValidation):
			h.logger.Warn("GET /professionals/{id}/availability-windows - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /professionals/{id}/availability-windows - Failed to list windows: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/availability-windows - Windows retrieved successfully: professional_id=%d, count=%d",
		professionalID, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, result)
}
