package update_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petlink/PetLink-BookingService/internal/api/handlers"
	"github.com/petlink/PetLink-BookingService/internal/api/middleware"
	"github.com/petlink/PetLink-BookingService/internal/service/availability"
	"github.com/petlink/PetLink-BookingService/internal/service/availability/models"
)

const (
	msgInvalidWindowID    = "некорректный ID окна доступности"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "окно доступности не найдено"
	msgForbidden          = "доступ запрещен"
	msgWindowOverlap      = "окно пересекается с существующим окном этого дня недели"
	msgWindowHasBookings  = "в окне есть активные бронирования"
	msgValidationFailed   = "некорректные параметры окна доступности"
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

// Handle PUT /api/v1/availability-windows/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	windowIDStr := vars["windowId"]

	windowID, err := strconv.ParseInt(windowIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /availability-windows/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	var req models.UpdateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability-windows/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /availability-windows/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	actor := models.Actor{UserID: userID, Role: role}

	window, err := h.service.Update(r.Context(), actor, windowID, req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrWindowNotFound):
			h.logger.Warn("PUT /availability-windows/{id} - Window not found: window_id=%d", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("PUT /availability-windows/{id} - Access denied: window_id=%d, user_id=%d",
				windowID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrWindowOverlap):
			h.logger.Warn("PUT /availability-windows/{id} - Window overlap: window_id=%d", windowID)
			handlers.RespondError(w, http.StatusConflict, msgWindowOverlap)

		case errors.Is(err, availability.ErrWindowHasBookings):
			h.logger.Warn("PUT /availability-windows/{id} - Window has bookings: window_id=%d", windowID)
			handlers.RespondError(w, http.StatusConflict, msgWindowHasBookings)

		case errors.Is(err, availability.ErrValidation):
			h.logger.Warn("PUT /availability-windows/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("PUT /availability-windows/{id} - Failed to update window: window_id=%d, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability-windows/{id} - Window updated successfully: window_id=%d, user_id=%d",
		windowID, userID)
	handlers.RespondJSON(w, http.StatusOK, window)
}
