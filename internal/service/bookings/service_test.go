package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/internal/infra/events"
	storage "github.com/petlink/PetLink-BookingService/internal/infra/storage/booking"
	"github.com/petlink/PetLink-BookingService/internal/service/bookings/models"
	"github.com/petlink/PetLink-BookingService/pkg/ptr"
	"github.com/petlink/PetLink-BookingService/pkg/types"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking

	// cancelGate при ненулевом значении задерживает запись Cancel:
	// вход подтверждается через cancelEntered, продолжение - по закрытию gate
	cancelGate    chan struct{}
	cancelEntered chan struct{}
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	repo := &fakeRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByClientID(_ context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.ProfessionalBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

// UpdateStatus повторяет статусный предикат продакшн-запроса:
// переход применяется только из ожидаемого статуса from
func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, from, to domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	if b.Status != from {
		return storage.ErrStatusConflict
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	return nil
}

// Cancel повторяет статусный предикат продакшн-запроса:
// отменяются только активные бронирования
func (f *fakeRepo) Cancel(_ context.Context, id int64, cancelledBy domain.CancelledBy, reason string) error {
	if f.cancelGate != nil {
		close(f.cancelEntered)
		<-f.cancelGate
	}
	b, ok := f.bookings[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	if b.Status != domain.StatusPending && b.Status != domain.StatusConfirmed {
		return storage.ErrStatusConflict
	}
	now := time.Now()
	b.Status = domain.StatusCanceled
	b.CancelledBy = ptr.Ptr(cancelledBy)
	b.CancellationReason = ptr.Ptr(reason)
	b.CancelledAt = &now
	b.UpdatedAt = now
	return nil
}

type fakePublisher struct {
	changed []events.BookingStatusChanged
}

func (f *fakePublisher) PublishBookingStatusChanged(_ context.Context, event events.BookingStatusChanged) {
	f.changed = append(f.changed, event)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(t *testing.T, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	start, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)
	return &domain.Booking{
		ID:              1,
		ProfessionalID:  2,
		ClientID:        3,
		PetID:           4,
		ServiceID:       5,
		BookingDate:     time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		DurationMinutes: 30,
		Status:          status,
		ServiceName:     "Осмотр",
	}
}

var (
	client       = models.Actor{UserID: 3, Role: models.RoleTutor}
	professional = models.Actor{UserID: 2, Role: models.RoleVeterinary}
	admin        = models.Actor{UserID: 77, Role: models.RoleAdmin}
	stranger     = models.Actor{UserID: 99, Role: models.RoleTutor}
)

func TestGetByID_Access(t *testing.T) {
	repo := newFakeRepo(testBooking(t, domain.StatusPending))
	svc := New(repo, &fakePublisher{}, nopLogger{})

	for _, actor := range []models.Actor{client, professional, admin} {
		resp, err := svc.GetByID(context.Background(), actor, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	}

	_, err := svc.GetByID(context.Background(), stranger, 1)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), client, 777)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed"},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed"},
		{name: "pending to completed is illegal", from: domain.StatusPending, to: "completed", wantErr: ErrIllegalTransition},
		{name: "completed is terminal", from: domain.StatusCompleted, to: "confirmed", wantErr: ErrIllegalTransition},
		{name: "canceled cannot complete", from: domain.StatusCanceled, to: "completed", wantErr: ErrIllegalTransition},
		{name: "unknown status", from: domain.StatusPending, to: "archived", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(testBooking(t, tt.from))
			publisher := &fakePublisher{}
			svc := New(repo, publisher, nopLogger{})

			resp, err := svc.UpdateStatus(context.Background(), 1, models.TransitionRequest{
				Actor:  professional,
				Status: tt.to,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, publisher.changed)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
			require.Len(t, publisher.changed, 1)
			assert.Equal(t, string(tt.from), publisher.changed[0].OldStatus)
			assert.Equal(t, tt.to, publisher.changed[0].NewStatus)
		})
	}
}

func TestUpdateStatus_OnlyProfessionalConfirms(t *testing.T) {
	repo := newFakeRepo(testBooking(t, domain.StatusPending))
	svc := New(repo, &fakePublisher{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, models.TransitionRequest{
		Actor:  client,
		Status: "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Admin может
	_, err = svc.UpdateStatus(context.Background(), 1, models.TransitionRequest{
		Actor:  admin,
		Status: "confirmed",
	})
	assert.NoError(t, err)
}

func TestUpdateStatus_CanceledDelegatesToCancel(t *testing.T) {
	repo := newFakeRepo(testBooking(t, domain.StatusConfirmed))
	svc := New(repo, &fakePublisher{}, nopLogger{})

	reason := "клиент заболел"
	resp, err := svc.UpdateStatus(context.Background(), 1, models.TransitionRequest{
		Actor:              client,
		Status:             "canceled",
		CancellationReason: ptr.Ptr(reason),
	})

	require.NoError(t, err)
	assert.Equal(t, "canceled", resp.Status)
	require.NotNil(t, resp.CancelledBy)
	assert.Equal(t, "client", *resp.CancelledBy)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, reason, *resp.CancellationReason)
}

func TestCancel_ResolvesCancellingParty(t *testing.T) {
	tests := []struct {
		name   string
		actor  models.Actor
		wantBy string
	}{
		{name: "client cancels", actor: client, wantBy: "client"},
		{name: "professional cancels", actor: professional, wantBy: "professional"},
		{name: "admin cancels as professional side", actor: admin, wantBy: "professional"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo(testBooking(t, domain.StatusPending))
			svc := New(repo, &fakePublisher{}, nopLogger{})

			resp, err := svc.Cancel(context.Background(), 1, models.CancelBookingRequest{Actor: tt.actor})

			require.NoError(t, err)
			require.NotNil(t, resp.CancelledBy)
			assert.Equal(t, tt.wantBy, *resp.CancelledBy)
			require.NotNil(t, resp.CancelledAt)
		})
	}
}

func TestCancel_Guards(t *testing.T) {
	repo := newFakeRepo(testBooking(t, domain.StatusCompleted))
	svc := New(repo, &fakePublisher{}, nopLogger{})

	// Завершённое бронирование не отменить
	_, err := svc.Cancel(context.Background(), 1, models.CancelBookingRequest{Actor: client})
	assert.ErrorIs(t, err, ErrIllegalTransition)

	// Посторонний не отменяет
	repo = newFakeRepo(testBooking(t, domain.StatusPending))
	svc = New(repo, &fakePublisher{}, nopLogger{})
	_, err = svc.Cancel(context.Background(), 1, models.CancelBookingRequest{Actor: stranger})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

// Отмена и завершение идут по одному confirmed бронированию одновременно:
// отмена проходит проверки по прочитанному статусу, но завершение успевает
// первым, и статусный предикат хранилища не даёт перезаписать терминальный статус
func TestCancel_ConcurrentCompletionWins(t *testing.T) {
	repo := newFakeRepo(testBooking(t, domain.StatusConfirmed))
	repo.cancelGate = make(chan struct{})
	repo.cancelEntered = make(chan struct{})
	publisher := &fakePublisher{}
	svc := New(repo, publisher, nopLogger{})

	cancelErr := make(chan error, 1)
	go func() {
		_, err := svc.Cancel(context.Background(), 1, models.CancelBookingRequest{Actor: client})
		cancelErr <- err
	}()

	// Отмена прочитала confirmed и встала перед записью
	<-repo.cancelEntered

	_, err := svc.UpdateStatus(context.Background(), 1, models.TransitionRequest{
		Actor:  professional,
		Status: "completed",
	})
	require.NoError(t, err)

	close(repo.cancelGate)

	assert.ErrorIs(t, <-cancelErr, ErrIllegalTransition)

	// Терминальный статус не перезаписан отменой
	got, err := svc.GetByID(context.Background(), professional, 1)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)

	// Событие только о реально случившемся переходе
	require.Len(t, publisher.changed, 1)
	assert.Equal(t, "completed", publisher.changed[0].NewStatus)
}

type conflictRepo struct{ *fakeRepo }

func (c *conflictRepo) UpdateStatus(context.Context, int64, domain.BookingStatus, domain.BookingStatus) error {
	return storage.ErrStatusConflict
}

func TestUpdateStatus_ConcurrentChangeRejected(t *testing.T) {
	repo := newFakeRepo(testBooking(t, domain.StatusConfirmed))
	publisher := &fakePublisher{}
	svc := New(&conflictRepo{fakeRepo: repo}, publisher, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, models.TransitionRequest{
		Actor:  professional,
		Status: "completed",
	})

	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Empty(t, publisher.changed)
}

func TestGetClientBookings_Access(t *testing.T) {
	repo := newFakeRepo(testBooking(t, domain.StatusPending))
	svc := New(repo, &fakePublisher{}, nopLogger{})

	resp, err := svc.GetClientBookings(context.Background(), client, models.GetClientBookingsRequest{ClientID: 3})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetClientBookings(context.Background(), stranger, models.GetClientBookingsRequest{ClientID: 3})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetClientBookings(context.Background(), admin, models.GetClientBookingsRequest{ClientID: 3})
	assert.NoError(t, err)
}

func TestGetProfessionalBookings_Access(t *testing.T) {
	repo := newFakeRepo(testBooking(t, domain.StatusPending))
	svc := New(repo, &fakePublisher{}, nopLogger{})

	resp, err := svc.GetProfessionalBookings(context.Background(), professional,
		models.GetProfessionalBookingsRequest{ProfessionalID: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetProfessionalBookings(context.Background(), stranger,
		models.GetProfessionalBookingsRequest{ProfessionalID: 2})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
