package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/internal/infra/events"
	bookingRepo "github.com/petlink/PetLink-BookingService/internal/infra/storage/booking"
	profileClient "github.com/petlink/PetLink-BookingService/internal/integrations/profileservice"
)

// UseCase use case для создания бронирования
//
// Список слотов, который клиент видел перед коммитом - только подсказка:
// авторитетная проверка выполняется здесь, внутри сериализуемой транзакции
// с блокировкой активных бронирований даты (FOR UPDATE). Частичный уникальный
// индекс активных слотов в БД - вторая линия защиты от двойного бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	availability  AvailabilityRepository
	profileClient ProfileServiceClient
	txManager     TransactionManager
	publisher     EventPublisher
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availability AvailabilityRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		availability:  availability,
		profileClient: profileClient,
		txManager:     txManager,
		publisher:     publisher,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: professional=%d, client=%d, pet=%d, service=%d, date=%s, time=%s",
		req.ProfessionalID, req.ClientID, req.PetID, req.ServiceID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем специалиста
	if _, err := uc.profileClient.GetProfessional(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, profileClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateBooking: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateBooking: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем услугу - длительность бронирования копируется из неё
	// в момент коммита и далее неизменна
	service, err := uc.profileClient.GetService(ctx, req.ProfessionalID, req.ServiceID)
	if err != nil {
		if errors.Is(err, profileClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Получаем питомца и проверяем принадлежность клиенту
	pet, err := uc.profileClient.GetPet(ctx, req.ClientID, req.PetID)
	if err != nil {
		if errors.Is(err, profileClient.ErrPetNotFound) {
			uc.logger.Warn("CreateBooking: pet id=%d not found for client id=%d", req.PetID, req.ClientID)
			return nil, ErrPetNotFound
		}
		uc.logger.Error("CreateBooking: failed to get pet id=%d: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем окна доступности на день недели даты
		dayOfWeek := int(req.Date.Weekday())
		windows, err := uc.availability.ListByProfessionalAndDay(txCtx, req.ProfessionalID, dayOfWeek)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list windows: %v", err)
			return fmt.Errorf("%w: failed to list availability windows: %v", ErrInternal, err)
		}

		if len(windows) == 0 {
			uc.logger.Warn("CreateBooking: professional=%d has no windows on weekday=%d",
				req.ProfessionalID, dayOfWeek)
			return ErrNoAvailabilityWindow
		}

		// 5.2. Проверяем, что запрошенный слот вообще генерируем
		if err := validateSlotAgainstWindows(windows, req.StartTime, service.DurationMinutes); err != nil {
			uc.logger.Warn("CreateBooking: slot %s does not fit any window", req.StartTime)
			return err
		}

		// 5.3. Получаем все активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ProfessionalBookingsFilter{
			ProfessionalID:  req.ProfessionalID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только занимающие слот
		}

		bookings, err := uc.bookingRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.4. Авторитетная проверка пересечения интервалов
		for _, existing := range bookings {
			if existing.Overlaps(req.StartTime, service.DurationMinutes) {
				uc.logger.Warn("CreateBooking: slot %s conflicts with booking id=%d",
					req.StartTime, existing.ID)
				return ErrSlotConflict
			}
		}

		// 5.5. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			ProfessionalID:  req.ProfessionalID,
			ClientID:        req.ClientID,
			PetID:           req.PetID,
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			AmountPaid:      0,
			// Денормализация данных услуги
			ServiceName:  service.Name,
			ServicePrice: getServicePrice(service),
			// Денормализация данных питомца
			PetName:    &pet.Name,
			PetSpecies: &pet.Species,
			// Заметки
			Notes: req.Notes,
		}

		// 5.6. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Гонка, прошедшая мимо FOR UPDATE, упирается в уникальный индекс
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected slot %s for professional=%d",
					req.StartTime, req.ProfessionalID)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 6. Публикуем событие для коллабораторов (уведомления специалисту)
	uc.publisher.PublishBookingCreated(ctx, events.BookingCreated{
		BookingID:      result.ID,
		ProfessionalID: result.ProfessionalID,
		ClientID:       result.ClientID,
		BookingDate:    result.BookingDate.Format(domain.DateFormat),
		StartTime:      result.StartTime.String(),
		OccurredAt:     uc.timeProvider.Now(),
	})

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		ProfessionalID:  result.ProfessionalID,
		ClientID:        result.ClientID,
		PetID:           result.PetID,
		ServiceID:       result.ServiceID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		AmountPaid:      result.AmountPaid,
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		PetName:         result.PetName,
		PetSpecies:      result.PetSpecies,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// getServicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func getServicePrice(service *profileClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
