package create_booking

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("create_booking: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrPetNotFound возвращается, когда питомец не найден у клиента
	ErrPetNotFound = errors.New("create_booking: pet not found")

	// ErrNoAvailabilityWindow возвращается, когда у специалиста нет окон
	// доступности на день недели запрошенной даты
	ErrNoAvailabilityWindow = errors.New("create_booking: no availability window for this day")

	// ErrInvalidTimeSlot возвращается, когда время начала не лежит на сетке
	// окна или услуга не помещается до конца окна
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotConflict возвращается, когда интервал пересекается с активным
	// бронированием. Ожидаемый исход оптимистичной конкуренции: вызывающий
	// перечитывает слоты и повторяет с другим выбором
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an active booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
