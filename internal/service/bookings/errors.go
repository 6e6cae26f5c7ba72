package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда действующая сторона не является
	// ни клиентом, ни специалистом бронирования
	ErrAccessDenied = errors.New("access denied")

	// ErrIllegalTransition возвращается при недопустимом переходе статуса
	// (например, завершение отменённого бронирования)
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
