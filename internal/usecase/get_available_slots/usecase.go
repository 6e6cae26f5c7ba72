package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	profileClient "github.com/petlink/PetLink-BookingService/internal/integrations/profileservice"
)

// UseCase use case для получения слотов специалиста на дату
//
// Результат - подсказка для презентации: авторитетная проверка доступности
// выполняется повторно при коммите бронирования (см. usecase create_booking)
type UseCase struct {
	bookingRepo   BookingRepository
	availability  AvailabilityRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availability AvailabilityRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		availability:  availability,
		profileClient: profileClient,
		logger:        logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем специалиста
	if _, err := uc.profileClient.GetProfessional(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, profileClient.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем услугу - её длительность определяет подгонку слотов
	service, err := uc.profileClient.GetService(ctx, req.ProfessionalID, req.ServiceID)
	if err != nil {
		if errors.Is(err, profileClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем окна доступности на день недели запрошенной даты
	dayOfWeek := int(req.Date.Weekday())
	windows, err := uc.availability.ListByProfessionalAndDay(ctx, req.ProfessionalID, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list windows: %v", err)
		return nil, fmt.Errorf("%w: failed to list availability windows: %v", ErrInternal, err)
	}

	// Нет окон на этот день недели - специалист не принимает, пустой список, не ошибка
	if len(windows) == 0 {
		uc.logger.Info("GetAvailableSlots: professional=%d has no windows on weekday=%d",
			req.ProfessionalID, dayOfWeek)
		return &Response{
			Date:            req.Date,
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       req.ServiceID,
			DurationMinutes: service.DurationMinutes,
			Slots:           []domain.Slot{},
		}, nil
	}

	// 5. Получаем активные бронирования на эту дату
	filter := domain.ProfessionalBookingsFilter{
		ProfessionalID:  req.ProfessionalID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только занимающие слот
	}

	bookings, err := uc.bookingRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты и помечаем занятые
	slots := generateSlots(windows, service.DurationMinutes, bookings)

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%d, service=%d, date=%s",
		len(slots), req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
