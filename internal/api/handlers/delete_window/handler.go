package delete_window

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
	msgInvalidWindowID   = "некорректный ID окна доступности"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "окно доступности не найдено"
	msgForbidden         = "доступ запрещен"
	msgWindowHasBookings = "в окне есть активные бронирования"
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

// Handle DELETE /api/v1/availability-windows/{windowId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	windowIDStr := vars["windowId"]

	windowID, err := strconv.ParseInt(windowIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /availability-windows/{id} - Invalid window ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /availability-windows/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	actor := models.Actor{UserID: userID, Role: role}

	if err := h.service.Delete(r.Context(), actor, windowID); err != nil {
		switch {
		case errors.Is(err, availability.ErrWindowNotFound):
			h.logger.Warn("DELETE /availability-windows/{id} - Window not found: window_id=%d", windowID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("DELETE /availability-windows/{id} - Access denied: window_id=%d, user_id=%d",
				windowID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrWindowHasBookings):
			h.logger.Warn("DELETE /availability-windows/{id} - Window has bookings: window_id=%d", windowID)
			handlers.RespondError(w, http.StatusConflict, msgWindowHasBookings)

		case errors.Is(err, availability.ErrValidation):
			h.logger.Warn("DELETE /availability-windows/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindowID)

		default:
			h.logger.Error("DELETE /availability-windows/{id} - Failed to delete window: window_id=%d, error=%v",
				windowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability-windows/{id} - Window deleted successfully: window_id=%d, user_id=%d",
		windowID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
