package availability

import "errors"

var (
	// ErrWindowNotFound возвращается когда окно доступности не найдено
	ErrWindowNotFound = errors.New("availability window not found")

	// ErrWindowOverlap возвращается когда новое окно пересекается
	// с существующим окном того же дня недели
	ErrWindowOverlap = errors.New("availability window overlaps an existing window")

	// ErrWindowHasBookings возвращается когда в окне есть будущие
	// активные бронирования
	ErrWindowHasBookings = errors.New("availability window has active bookings")

	// ErrAccessDenied возвращается при попытке менять чужое расписание
	ErrAccessDenied = errors.New("access denied")

	// ErrValidation возвращается при некорректных данных окна
	ErrValidation = errors.New("availability window validation failed")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal availability service error")
)
