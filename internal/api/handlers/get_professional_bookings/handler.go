package get_professional_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petlink/PetLink-BookingService/internal/api/handlers"
	"github.com/petlink/PetLink-BookingService/internal/api/middleware"
	"github.com/petlink/PetLink-BookingService/internal/service/bookings"
	"github.com/petlink/PetLink-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgInvalidParams         = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/bookings - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /professionals/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	req, err := ParseQuery(professionalID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/bookings - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	actor := models.Actor{UserID: userID, Role: role}

	result, err := h.service.GetProfessionalBookings(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /professionals/{id}/bookings - Access denied: professional_id=%d, user_id=%d",
				professionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/bookings - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /professionals/{id}/bookings - Failed to get bookings: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/bookings - Bookings retrieved successfully: professional_id=%d, count=%d",
		professionalID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
