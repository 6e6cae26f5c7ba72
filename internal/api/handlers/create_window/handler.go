package create_window

import (
	"errors"
	"net/http"

	"github.com/petlink/PetLink-BookingService/internal/api/handlers"
	"github.com/petlink/PetLink-BookingService/internal/api/middleware"
	"github.com/petlink/PetLink-BookingService/internal/service/availability"
	"github.com/petlink/PetLink-BookingService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgWindowOverlap      = "окно пересекается с существующим окном этого дня недели"
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

// Handle POST /api/v1/availability-windows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability-windows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability-windows - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	actor := models.Actor{UserID: userID, Role: role}

	window, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("POST /availability-windows - Access denied: professional_id=%d, user_id=%d",
				req.ProfessionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, availability.ErrWindowOverlap):
			h.logger.Warn("POST /availability-windows - Window overlap: professional_id=%d, day=%d, %s-%s",
				req.ProfessionalID, req.DayOfWeek, req.StartTime, req.EndTime)
			handlers.RespondError(w, http.StatusConflict, msgWindowOverlap)

		case errors.Is(err, availability.ErrValidation):
			h.logger.Warn("POST /availability-windows - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /availability-windows - Failed to create window: professional_id=%d, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability-windows - Window created successfully: window_id=%d, professional_id=%d",
		window.ID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, window)
}
