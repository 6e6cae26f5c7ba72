package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	getAvailableSlots "github.com/petlink/PetLink-BookingService/internal/usecase/get_available_slots"
	"github.com/petlink/PetLink-BookingService/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc GetAvailableSlotsUseCase) *mux.Router {
	r := mux.NewRouter()
	h := NewHandler(uc, nopLogger{})
	r.HandleFunc("/api/v1/professionals/{professionalId}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Success(t *testing.T) {
	start, err := types.NewTimeStringFromString("08:00")
	require.NoError(t, err)

	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:            time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		ProfessionalID:  1,
		ServiceID:       2,
		DurationMinutes: 30,
		Slots: []domain.Slot{
			{StartTime: start, DurationMinutes: 30, Available: false},
		},
	}}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/professionals/1/available-slots?serviceId=2&date=2026-09-14", nil)
	rec := httptest.NewRecorder()

	newRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-09-14", body.Date)
	assert.Equal(t, 30, body.DurationMinutes)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "08:00", body.Slots[0].StartTime)
	assert.False(t, body.Slots[0].Available)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "invalid professional id", url: "/api/v1/professionals/abc/available-slots?serviceId=2&date=2026-09-14"},
		{name: "missing service id", url: "/api/v1/professionals/1/available-slots?date=2026-09-14"},
		{name: "invalid service id", url: "/api/v1/professionals/1/available-slots?serviceId=x&date=2026-09-14"},
		{name: "missing date", url: "/api/v1/professionals/1/available-slots?serviceId=2"},
		{name: "invalid date", url: "/api/v1/professionals/1/available-slots?serviceId=2&date=14.09.2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			newRouter(&fakeUseCase{}).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "professional not found", err: getAvailableSlots.ErrProfessionalNotFound, wantStatus: http.StatusNotFound},
		{name: "service not found", err: getAvailableSlots.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", err: getAvailableSlots.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal error", err: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/professionals/1/available-slots?serviceId=2&date=2026-09-14", nil)
			rec := httptest.NewRecorder()

			newRouter(&fakeUseCase{err: tt.err}).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
