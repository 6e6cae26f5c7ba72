package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/internal/infra/events"
	storage "github.com/petlink/PetLink-BookingService/internal/infra/storage/booking"
	"github.com/petlink/PetLink-BookingService/internal/service/bookings/models"
)

// Service реализует бизнес-логику работы с бронированиями:
// чтение с проверкой доступа, отмена и переходы статусов
type Service struct {
	repo      BookingRepository
	publisher EventPublisher
	logger    Logger
}

// New создаёт новый сервис бронирований
func New(repo BookingRepository, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// GetByID возвращает бронирование по ID.
// Доступ: клиент бронирования, специалист бронирования или admin
func (s *Service) GetByID(ctx context.Context, actor models.Actor, bookingID int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkReadAccess(actor, booking); err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetClientBookings возвращает бронирования клиента.
// Клиент видит только свои бронирования, admin - любые
func (s *Service) GetClientBookings(ctx context.Context, actor models.Actor, req models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: GetClientBookings - invalid client id %d", ErrInvalidInput, req.ClientID)
	}

	if !actor.IsAdmin() && actor.UserID != req.ClientID {
		return nil, fmt.Errorf("%w: GetClientBookings - user %d requested bookings of client %d", ErrAccessDenied, actor.UserID, req.ClientID)
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		st, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: GetClientBookings - %v", ErrInvalidInput, err)
		}
		status = &st
	}

	bookings, err := s.repo.GetByClientID(ctx, req.ClientID, status)
	if err != nil {
		s.logger.Error("bookings.Service: GetClientBookings - repo error: %v", err)
		return nil, fmt.Errorf("%w: GetClientBookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetProfessionalBookings возвращает бронирования специалиста с фильтрами.
// Специалист видит только свой календарь, admin - любой
func (s *Service) GetProfessionalBookings(ctx context.Context, actor models.Actor, req models.GetProfessionalBookingsRequest) (*models.BookingListResponse, error) {
	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: GetProfessionalBookings - invalid professional id %d", ErrInvalidInput, req.ProfessionalID)
	}

	if !actor.IsAdmin() && actor.UserID != req.ProfessionalID {
		return nil, fmt.Errorf("%w: GetProfessionalBookings - user %d requested calendar of professional %d", ErrAccessDenied, actor.UserID, req.ProfessionalID)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessionalBookings - %v", ErrInvalidInput, err)
	}

	bookings, err := s.repo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("bookings.Service: GetProfessionalBookings - repo error: %v", err)
		return nil, fmt.Errorf("%w: GetProfessionalBookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Отменить могут обе стороны бронирования (клиент и специалист) либо admin.
// Отмена возможна только из статусов pending и confirmed
func (s *Service) Cancel(ctx context.Context, bookingID int64, req models.CancelBookingRequest) (*models.BookingResponse, error) {
	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: Cancel - cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	cancelledBy, err := s.resolveCancelledBy(req.Actor, booking)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: Cancel - booking %d in status %s cannot be cancelled", ErrIllegalTransition, bookingID, booking.Status)
	}

	oldStatus := booking.Status

	if err := s.repo.Cancel(ctx, bookingID, cancelledBy, req.CancellationReason); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: Cancel - booking %d", ErrBookingNotFound, bookingID)
		}
		// Статус изменился между чтением и записью - предикат в WHERE не пропустил
		if errors.Is(err, storage.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: Cancel - booking %d is no longer active", ErrIllegalTransition, bookingID)
		}
		s.logger.Error("bookings.Service: Cancel - repo error: %v", err)
		return nil, fmt.Errorf("%w: Cancel: %v", ErrInternal, err)
	}

	updated, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.publishStatusChange(ctx, updated, oldStatus)

	s.logger.Info("bookings.Service: booking %d cancelled by %s", bookingID, cancelledBy)

	return models.FromDomainBooking(updated), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Допустимые переходы: pending -> confirmed, confirmed -> completed,
// pending|confirmed -> canceled. Подтверждать и завершать может
// только специалист бронирования (или admin), отмена делегируется в Cancel
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req models.TransitionRequest) (*models.BookingResponse, error) {
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - %v", ErrInvalidInput, err)
	}

	// Отмена идёт через отдельный путь: там определяется инициатор
	if newStatus == domain.StatusCanceled {
		cancelReq := models.CancelBookingRequest{Actor: req.Actor}
		if req.CancellationReason != nil {
			cancelReq.CancellationReason = *req.CancellationReason
		}
		return s.Cancel(ctx, bookingID, cancelReq)
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// confirmed и completed выставляет сторона специалиста
	if !req.Actor.IsAdmin() && req.Actor.UserID != booking.ProfessionalID {
		return nil, fmt.Errorf("%w: UpdateStatus - user %d is not the professional of booking %d", ErrAccessDenied, req.Actor.UserID, bookingID)
	}

	if !booking.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: UpdateStatus - booking %d: %s -> %s", ErrIllegalTransition, bookingID, booking.Status, newStatus)
	}

	oldStatus := booking.Status

	if err := s.repo.UpdateStatus(ctx, bookingID, oldStatus, newStatus); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: UpdateStatus - booking %d", ErrBookingNotFound, bookingID)
		}
		// Статус изменился между чтением и записью - предикат в WHERE не пропустил
		if errors.Is(err, storage.ErrStatusConflict) {
			return nil, fmt.Errorf("%w: UpdateStatus - booking %d changed concurrently", ErrIllegalTransition, bookingID)
		}
		s.logger.Error("bookings.Service: UpdateStatus - repo error: %v", err)
		return nil, fmt.Errorf("%w: UpdateStatus: %v", ErrInternal, err)
	}

	updated, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.publishStatusChange(ctx, updated, oldStatus)

	s.logger.Info("bookings.Service: booking %d transitioned %s -> %s", bookingID, oldStatus, newStatus)

	return models.FromDomainBooking(updated), nil
}

// getBooking загружает бронирование и мапит ошибку хранилища
func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: invalid booking id %d", ErrInvalidInput, bookingID)
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("bookings.Service: getBooking - repo error: %v", err)
		return nil, fmt.Errorf("%w: getBooking: %v", ErrInternal, err)
	}

	return booking, nil
}

// checkReadAccess проверяет право на чтение бронирования
func (s *Service) checkReadAccess(actor models.Actor, booking *domain.Booking) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.UserID == booking.ClientID || actor.UserID == booking.ProfessionalID {
		return nil
	}
	return fmt.Errorf("%w: user %d has no access to booking %d", ErrAccessDenied, actor.UserID, booking.ID)
}

// resolveCancelledBy определяет инициатора отмены по actor
func (s *Service) resolveCancelledBy(actor models.Actor, booking *domain.Booking) (domain.CancelledBy, error) {
	switch {
	case actor.UserID == booking.ClientID:
		return domain.CancelledByClient, nil
	case actor.UserID == booking.ProfessionalID:
		return domain.CancelledByProfessional, nil
	case actor.IsAdmin():
		// Отмена админом фиксируется как отмена со стороны специалиста
		return domain.CancelledByProfessional, nil
	default:
		return "", fmt.Errorf("%w: user %d cannot cancel booking %d", ErrAccessDenied, actor.UserID, booking.ID)
	}
}

// publishStatusChange отправляет событие о смене статуса
func (s *Service) publishStatusChange(ctx context.Context, booking *domain.Booking, oldStatus domain.BookingStatus) {
	s.publisher.PublishBookingStatusChanged(ctx, events.BookingStatusChanged{
		BookingID:      booking.ID,
		ProfessionalID: booking.ProfessionalID,
		ClientID:       booking.ClientID,
		OldStatus:      string(oldStatus),
		NewStatus:      string(booking.Status),
		OccurredAt:     booking.UpdatedAt,
	})
}
