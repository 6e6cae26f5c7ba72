package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	storage "github.com/petlink/PetLink-BookingService/internal/infra/storage/availability"
	"github.com/petlink/PetLink-BookingService/internal/service/availability/models"
	"github.com/petlink/PetLink-BookingService/pkg/types"
)

type fakeWindowRepo struct {
	nextID  int64
	windows map[int64]*domain.AvailabilityWindow
}

func newFakeWindowRepo(windows ...*domain.AvailabilityWindow) *fakeWindowRepo {
	repo := &fakeWindowRepo{windows: make(map[int64]*domain.AvailabilityWindow)}
	for _, w := range windows {
		repo.windows[w.ID] = w
		if w.ID > repo.nextID {
			repo.nextID = w.ID
		}
	}
	return repo
}

func (f *fakeWindowRepo) Create(_ context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	f.nextID++
	window.ID = f.nextID
	window.CreatedAt = time.Now()
	window.UpdatedAt = window.CreatedAt
	f.windows[window.ID] = window
	return window, nil
}

func (f *fakeWindowRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilityWindow, error) {
	w, ok := f.windows[id]
	if !ok {
		return nil, storage.ErrWindowNotFound
	}
	return w, nil
}

func (f *fakeWindowRepo) ListByProfessional(_ context.Context, professionalID int64) ([]*domain.AvailabilityWindow, error) {
	var result []*domain.AvailabilityWindow
	for _, w := range f.windows {
		if w.ProfessionalID == professionalID {
			result = append(result, w)
		}
	}
	return result, nil
}

func (f *fakeWindowRepo) ListByProfessionalAndDay(_ context.Context, professionalID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	var result []*domain.AvailabilityWindow
	for _, w := range f.windows {
		if w.ProfessionalID == professionalID && w.DayOfWeek == dayOfWeek {
			result = append(result, w)
		}
	}
	return result, nil
}

func (f *fakeWindowRepo) Update(_ context.Context, id int64, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	existing, ok := f.windows[id]
	if !ok {
		return nil, storage.ErrWindowNotFound
	}
	window.ID = id
	window.ProfessionalID = existing.ProfessionalID
	window.CreatedAt = existing.CreatedAt
	window.UpdatedAt = time.Now()
	f.windows[id] = window
	return window, nil
}

func (f *fakeWindowRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.windows[id]; !ok {
		return storage.ErrWindowNotFound
	}
	delete(f.windows, id)
	return nil
}

type fakeBookingRepo struct {
	active       []*domain.Booking
	lastFromDate time.Time
}

func (f *fakeBookingRepo) GetActiveByProfessionalAndWeekday(_ context.Context, _ int64, fromDate time.Time, _ int) ([]*domain.Booking, error) {
	f.lastFromDate = fromDate
	return f.active, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

var (
	owner    = models.Actor{UserID: 1, Role: models.RoleVeterinary}
	admin    = models.Actor{UserID: 50, Role: models.RoleAdmin}
	stranger = models.Actor{UserID: 99, Role: models.RoleVeterinary}
)

func existingWindow(t *testing.T) *domain.AvailabilityWindow {
	t.Helper()
	return &domain.AvailabilityWindow{
		ID:                  1,
		ProfessionalID:      1,
		DayOfWeek:           1,
		StartTime:           mustTime(t, "09:00"),
		EndTime:             mustTime(t, "12:00"),
		SlotIntervalMinutes: 30,
	}
}

func createRequest(day int, start, end string, interval int) models.CreateWindowRequest {
	return models.CreateWindowRequest{
		ProfessionalID:      1,
		DayOfWeek:           day,
		StartTime:           start,
		EndTime:             end,
		SlotIntervalMinutes: interval,
	}
}

func TestCreate_Success(t *testing.T) {
	svc := New(newFakeWindowRepo(), &fakeBookingRepo{}, nopLogger{})

	resp, err := svc.Create(context.Background(), owner, createRequest(1, "09:00", "18:00", 30))

	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "18:00", resp.EndTime)
	assert.Equal(t, 30, resp.SlotIntervalMinutes)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateWindowRequest
	}{
		{name: "end before start", req: createRequest(1, "10:00", "09:00", 30)},
		{name: "end equals start", req: createRequest(1, "10:00", "10:00", 30)},
		{name: "day of week out of range", req: createRequest(7, "09:00", "12:00", 30)},
		{name: "negative day", req: createRequest(-1, "09:00", "12:00", 30)},
		{name: "interval too small", req: createRequest(1, "09:00", "12:00", 5)},
		{name: "interval too large", req: createRequest(1, "09:00", "12:00", 180)},
		{name: "window shorter than interval", req: createRequest(1, "09:00", "09:20", 30)},
		{name: "malformed time", req: createRequest(1, "9am", "12:00", 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(newFakeWindowRepo(), &fakeBookingRepo{}, nopLogger{})

			_, err := svc.Create(context.Background(), owner, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreate_OverlapRejected(t *testing.T) {
	svc := New(newFakeWindowRepo(existingWindow(t)), &fakeBookingRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), owner, createRequest(1, "11:00", "14:00", 30))
	assert.ErrorIs(t, err, ErrWindowOverlap)

	// Стыкующееся окно допустимо
	_, err = svc.Create(context.Background(), owner, createRequest(1, "12:00", "15:00", 30))
	assert.NoError(t, err)

	// Тот же диапазон в другой день допустим
	_, err = svc.Create(context.Background(), owner, createRequest(2, "09:00", "12:00", 30))
	assert.NoError(t, err)
}

func TestCreate_AccessControl(t *testing.T) {
	svc := New(newFakeWindowRepo(), &fakeBookingRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), stranger, createRequest(1, "09:00", "12:00", 30))
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Create(context.Background(), admin, createRequest(1, "09:00", "12:00", 30))
	assert.NoError(t, err)
}

func TestUpdate_RejectsWhenBookingNoLongerFits(t *testing.T) {
	bookings := &fakeBookingRepo{active: []*domain.Booking{{
		ID:              10,
		ProfessionalID:  1,
		BookingDate:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "11:00"),
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
	}}}
	svc := New(newFakeWindowRepo(existingWindow(t)), bookings, nopLogger{})

	// Сжимаем окно до 09:00-11:00 - бронирование 11:00 выпадает
	req := models.UpdateWindowRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00", SlotIntervalMinutes: 30}
	_, err := svc.Update(context.Background(), owner, 1, req)
	assert.ErrorIs(t, err, ErrWindowHasBookings)

	// Расширение окна бронированиям не мешает
	req = models.UpdateWindowRequest{DayOfWeek: 1, StartTime: "08:00", EndTime: "13:00", SlotIntervalMinutes: 30}
	resp, err := svc.Update(context.Background(), owner, 1, req)
	require.NoError(t, err)
	assert.Equal(t, "08:00", resp.StartTime)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := New(newFakeWindowRepo(), &fakeBookingRepo{}, nopLogger{})

	req := models.UpdateWindowRequest{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", SlotIntervalMinutes: 30}
	_, err := svc.Update(context.Background(), owner, 42, req)
	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestDelete_BlockedByActiveBookings(t *testing.T) {
	bookings := &fakeBookingRepo{active: []*domain.Booking{{
		ID:              10,
		ProfessionalID:  1,
		BookingDate:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "10:00"),
		DurationMinutes: 30,
		Status:          domain.StatusPending,
	}}}
	svc := New(newFakeWindowRepo(existingWindow(t)), bookings, nopLogger{})

	err := svc.Delete(context.Background(), owner, 1)
	assert.ErrorIs(t, err, ErrWindowHasBookings)
}

func TestDelete_Success(t *testing.T) {
	repo := newFakeWindowRepo(existingWindow(t))
	svc := New(repo, &fakeBookingRepo{}, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), owner, 1))

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, storage.ErrWindowNotFound)
}

// Граница "будущих" бронирований считается от локальной календарной даты,
// а не от усечения по UTC: в 01:00 по местному времени UTC ещё показывает
// вчерашний день, и срез по UTC захватывал бы уже прошедший день записи
func TestDelete_BookingCutoffUsesLocalCalendarDay(t *testing.T) {
	bookings := &fakeBookingRepo{}
	svc := New(newFakeWindowRepo(existingWindow(t)), bookings, nopLogger{})
	svc.now = func() time.Time {
		return time.Date(2026, 9, 14, 1, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	}

	require.NoError(t, svc.Delete(context.Background(), owner, 1))

	assert.True(t, bookings.lastFromDate.Equal(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)),
		"fromDate = %s", bookings.lastFromDate)
}

func TestDelete_AccessControl(t *testing.T) {
	svc := New(newFakeWindowRepo(existingWindow(t)), &fakeBookingRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), stranger, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList(t *testing.T) {
	second := existingWindow(t)
	second.ID = 2
	second.DayOfWeek = 3
	svc := New(newFakeWindowRepo(existingWindow(t), second), &fakeBookingRepo{}, nopLogger{})

	resp, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, resp.Windows, 2)

	_, err = svc.List(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidation)
}
