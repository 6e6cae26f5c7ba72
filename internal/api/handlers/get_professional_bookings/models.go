package get_professional_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/internal/service/bookings/models"
)

// ParseQuery собирает модель сервиса из query параметров.
// Поддерживаются: startDate, endDate (YYYY-MM-DD), status, includeInactive
func ParseQuery(professionalID int64, query url.Values) (models.GetProfessionalBookingsRequest, error) {
	req := models.GetProfessionalBookingsRequest{ProfessionalID: professionalID}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return req, err
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return req, err
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeStr := query.Get("includeInactive"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return req, err
		}
		req.IncludeInactive = include
	}

	return req, nil
}
