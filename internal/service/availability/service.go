package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	storage "github.com/petlink/PetLink-BookingService/internal/infra/storage/availability"
	"github.com/petlink/PetLink-BookingService/internal/service/availability/models"
)

// Service управляет еженедельным расписанием специалиста:
// создание, изменение, удаление и просмотр окон доступности.
// Окна одного дня недели не пересекаются - инвариант проверяется
// при каждой записи
type Service struct {
	windows  WindowRepository
	bookings BookingRepository
	logger   Logger
	now      func() time.Time
}

// New создаёт новый сервис окон доступности
func New(windows WindowRepository, bookings BookingRepository, logger Logger) *Service {
	return &Service{
		windows:  windows,
		bookings: bookings,
		logger:   logger,
		now:      time.Now,
	}
}

// Create добавляет окно доступности в расписание специалиста
func (s *Service) Create(ctx context.Context, actor models.Actor, req models.CreateWindowRequest) (*models.WindowResponse, error) {
	if req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: Create - invalid professional id %d", ErrValidation, req.ProfessionalID)
	}

	if err := s.checkWriteAccess(actor, req.ProfessionalID); err != nil {
		return nil, err
	}

	window, err := req.ToDomainWindow()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrValidation, err)
	}

	if err := validateWindow(window); err != nil {
		return nil, err
	}

	if err := s.checkOverlap(ctx, window, 0); err != nil {
		return nil, err
	}

	created, err := s.windows.Create(ctx, window)
	if err != nil {
		s.logger.Error("availability.Service: Create - repo error: %v", err)
		return nil, fmt.Errorf("%w: Create: %v", ErrInternal, err)
	}

	s.logger.Info("availability.Service: window %d created for professional %d (day %d, %s-%s)",
		created.ID, created.ProfessionalID, created.DayOfWeek, created.StartTime, created.EndTime)

	return models.FromDomainWindow(created), nil
}

// Update изменяет существующее окно доступности.
// Изменение отклоняется, если будущие активные бронирования
// перестают помещаться в новое окно
func (s *Service) Update(ctx context.Context, actor models.Actor, windowID int64, req models.UpdateWindowRequest) (*models.WindowResponse, error) {
	existing, err := s.getWindow(ctx, windowID)
	if err != nil {
		return nil, err
	}

	if err := s.checkWriteAccess(actor, existing.ProfessionalID); err != nil {
		return nil, err
	}

	window, err := req.ToDomainWindow(existing.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - %v", ErrValidation, err)
	}

	if err := validateWindow(window); err != nil {
		return nil, err
	}

	if err := s.checkOverlap(ctx, window, windowID); err != nil {
		return nil, err
	}

	// Бронирования, которые попадали в старое окно, должны поместиться в новое
	if err := s.checkWindowBookings(ctx, existing, window); err != nil {
		return nil, err
	}

	updated, err := s.windows.Update(ctx, windowID, window)
	if err != nil {
		if errors.Is(err, storage.ErrWindowNotFound) {
			return nil, fmt.Errorf("%w: Update - window %d", ErrWindowNotFound, windowID)
		}
		s.logger.Error("availability.Service: Update - repo error: %v", err)
		return nil, fmt.Errorf("%w: Update: %v", ErrInternal, err)
	}

	s.logger.Info("availability.Service: window %d updated for professional %d", windowID, existing.ProfessionalID)

	return models.FromDomainWindow(updated), nil
}

// Delete удаляет окно доступности.
// Удаление отклоняется, если в окне есть будущие активные бронирования
func (s *Service) Delete(ctx context.Context, actor models.Actor, windowID int64) error {
	existing, err := s.getWindow(ctx, windowID)
	if err != nil {
		return err
	}

	if err := s.checkWriteAccess(actor, existing.ProfessionalID); err != nil {
		return err
	}

	if err := s.checkWindowBookings(ctx, existing, nil); err != nil {
		return err
	}

	if err := s.windows.Delete(ctx, windowID); err != nil {
		if errors.Is(err, storage.ErrWindowNotFound) {
			return fmt.Errorf("%w: Delete - window %d", ErrWindowNotFound, windowID)
		}
		s.logger.Error("availability.Service: Delete - repo error: %v", err)
		return fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}

	s.logger.Info("availability.Service: window %d deleted for professional %d", windowID, existing.ProfessionalID)

	return nil
}

// List возвращает расписание специалиста, отсортированное
// по дню недели и времени начала
func (s *Service) List(ctx context.Context, professionalID int64) (*models.WindowListResponse, error) {
	if professionalID <= 0 {
		return nil, fmt.Errorf("%w: List - invalid professional id %d", ErrValidation, professionalID)
	}

	windows, err := s.windows.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("availability.Service: List - repo error: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}

	return models.FromDomainWindowList(windows), nil
}

// getWindow загружает окно и мапит ошибку хранилища
func (s *Service) getWindow(ctx context.Context, windowID int64) (*domain.AvailabilityWindow, error) {
	if windowID <= 0 {
		return nil, fmt.Errorf("%w: invalid window id %d", ErrValidation, windowID)
	}

	window, err := s.windows.GetByID(ctx, windowID)
	if err != nil {
		if errors.Is(err, storage.ErrWindowNotFound) {
			return nil, fmt.Errorf("%w: window %d", ErrWindowNotFound, windowID)
		}
		s.logger.Error("availability.Service: getWindow - repo error: %v", err)
		return nil, fmt.Errorf("%w: getWindow: %v", ErrInternal, err)
	}

	return window, nil
}

// checkWriteAccess проверяет право менять расписание специалиста
func (s *Service) checkWriteAccess(actor models.Actor, professionalID int64) error {
	if actor.IsAdmin() || actor.UserID == professionalID {
		return nil
	}
	return fmt.Errorf("%w: user %d cannot modify schedule of professional %d", ErrAccessDenied, actor.UserID, professionalID)
}

// checkOverlap проверяет пересечение с другими окнами того же дня недели.
// excludeID исключает само окно при обновлении
func (s *Service) checkOverlap(ctx context.Context, window *domain.AvailabilityWindow, excludeID int64) error {
	siblings, err := s.windows.ListByProfessionalAndDay(ctx, window.ProfessionalID, window.DayOfWeek)
	if err != nil {
		s.logger.Error("availability.Service: checkOverlap - repo error: %v", err)
		return fmt.Errorf("%w: checkOverlap: %v", ErrInternal, err)
	}

	for _, sibling := range siblings {
		if sibling.ID == excludeID {
			continue
		}
		if window.OverlapsWindow(sibling) {
			return fmt.Errorf("%w: %s-%s overlaps window %d (%s-%s)",
				ErrWindowOverlap, window.StartTime, window.EndTime, sibling.ID, sibling.StartTime, sibling.EndTime)
		}
	}

	return nil
}

// checkWindowBookings ищет будущие активные бронирования внутри old.
// При replacement == nil (удаление) любое такое бронирование блокирует
// операцию; при обновлении блокируют только бронирования, не помещающиеся
// в новое окно
func (s *Service) checkWindowBookings(ctx context.Context, old, replacement *domain.AvailabilityWindow) error {
	// Граница "сегодня" берётся от локальной календарной даты специалиста,
	// как и booking_date; усечение по UTC около полуночи сдвигало бы её на день
	n := s.now()
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)

	active, err := s.bookings.GetActiveByProfessionalAndWeekday(ctx, old.ProfessionalID, today, old.DayOfWeek)
	if err != nil {
		s.logger.Error("availability.Service: checkWindowBookings - repo error: %v", err)
		return fmt.Errorf("%w: checkWindowBookings: %v", ErrInternal, err)
	}

	for _, booking := range active {
		if !old.Fits(booking.StartTime, booking.DurationMinutes) {
			continue
		}
		if replacement != nil &&
			replacement.DayOfWeek == old.DayOfWeek &&
			replacement.Fits(booking.StartTime, booking.DurationMinutes) {
			continue
		}
		return fmt.Errorf("%w: booking %d at %s on %s",
			ErrWindowHasBookings, booking.ID, booking.StartTime, booking.BookingDate.Format(domain.DateFormat))
	}

	return nil
}

// validateWindow проверяет инварианты окна доступности
func validateWindow(w *domain.AvailabilityWindow) error {
	if w.DayOfWeek < domain.MinDayOfWeek || w.DayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be between %d and %d, got %d",
			ErrValidation, domain.MinDayOfWeek, domain.MaxDayOfWeek, w.DayOfWeek)
	}

	if !w.StartTime.IsBefore(w.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s", ErrValidation, w.StartTime, w.EndTime)
	}

	if w.SlotIntervalMinutes < domain.MinSlotIntervalMinutes || w.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("%w: slotIntervalMinutes must be between %d and %d, got %d",
			ErrValidation, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes, w.SlotIntervalMinutes)
	}

	if w.LengthMinutes() < w.SlotIntervalMinutes {
		return fmt.Errorf("%w: window %s-%s is shorter than slot interval %d",
			ErrValidation, w.StartTime, w.EndTime, w.SlotIntervalMinutes)
	}

	return nil
}
