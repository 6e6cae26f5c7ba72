package get_client_bookings

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
	msgInvalidClientID = "некорректный ID клиента"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
	msgInvalidParams   = "некорректные параметры запроса"
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

// Handle GET /api/v1/clients/{clientId}/bookings
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientIDStr := vars["clientId"]

	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/bookings - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	req := models.GetClientBookingsRequest{ClientID: clientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	actor := models.Actor{UserID: userID, Role: role}

	result, err := h.service.GetClientBookings(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /clients/{id}/bookings - Access denied: client_id=%d, user_id=%d", clientID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/bookings - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /clients/{id}/bookings - Failed to get bookings: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/bookings - Bookings retrieved successfully: client_id=%d, count=%d",
		clientID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
