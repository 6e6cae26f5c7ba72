package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда вставка нарушает уникальный индекс
	// активных бронирований (professional_id, booking_date, start_time)
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrStatusConflict возвращается, когда UPDATE со статусным предикатом
	// не затронул строку: статус успел измениться после чтения
	ErrStatusConflict = errors.New("booking.repository: booking status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
