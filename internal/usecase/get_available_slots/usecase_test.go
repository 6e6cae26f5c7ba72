package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/internal/integrations/profileservice"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeAvailabilityRepo struct {
	windows []*domain.AvailabilityWindow
	err     error
}

func (f *fakeAvailabilityRepo) ListByProfessionalAndDay(_ context.Context, _ int64, _ int) ([]*domain.AvailabilityWindow, error) {
	return f.windows, f.err
}

type fakeProfileClient struct {
	professionalErr error
	serviceErr      error
	duration        int
}

func (f *fakeProfileClient) GetProfessional(_ context.Context, id int64) (*profileservice.Professional, error) {
	if f.professionalErr != nil {
		return nil, f.professionalErr
	}
	return &profileservice.Professional{ID: id, Role: "veterinary", IsActive: true}, nil
}

func (f *fakeProfileClient) GetService(_ context.Context, professionalID, serviceID int64) (*profileservice.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	return &profileservice.Service{
		ID:              serviceID,
		ProfessionalID:  professionalID,
		Name:            "Осмотр",
		DurationMinutes: f.duration,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник
var testDate = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func TestExecute_ReturnsSlotsWithBookedFlag(t *testing.T) {
	availability := &fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{
		testWindow(t, "08:00", "09:00", 30),
	}}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{{
		StartTime:       mustTime(t, "08:00"),
		DurationMinutes: 30,
		Status:          domain.StatusPending,
	}}}

	uc := NewUseCase(bookingRepo, availability, &fakeProfileClient{duration: 30}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		ServiceID:      2,
		Date:           testDate,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.False(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[1].Available)
}

func TestExecute_EmptyDayIsSuccess(t *testing.T) {
	// День без окон - успешный ответ с пустым списком, а не ошибка
	uc := NewUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{}, &fakeProfileClient{duration: 30}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID: 1,
		ServiceID:      2,
		Date:           testDate,
	})

	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ReadIsIdempotent(t *testing.T) {
	availability := &fakeAvailabilityRepo{windows: []*domain.AvailabilityWindow{
		testWindow(t, "08:00", "09:00", 30),
	}}
	uc := NewUseCase(&fakeBookingRepo{}, availability, &fakeProfileClient{duration: 30}, nopLogger{})

	req := &Request{ProfessionalID: 1, ServiceID: 2, Date: testDate}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{},
		&fakeProfileClient{professionalErr: profileservice.ErrProfessionalNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 99, ServiceID: 2, Date: testDate})

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeAvailabilityRepo{},
		&fakeProfileClient{serviceErr: profileservice.ErrServiceNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, ServiceID: 99, Date: testDate})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
