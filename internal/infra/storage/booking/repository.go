package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/pkg/dbmetrics"
	"github.com/petlink/PetLink-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код PostgreSQL для нарушения уникального индекса
const uniqueViolation = "23505"

// activeSlotIndexName частичный уникальный индекс активных бронирований
// (см. migrations/001_init.sql) - вторая линия защиты от двойного бронирования
const activeSlotIndexName = "uq_bookings_active_slot"

var bookingColumns = []string{
	"id",
	"professional_id",
	"client_id",
	"pet_id",
	"service_id",
	"booking_date",
	"start_time",
	"duration_minutes",
	"status",
	"amount_paid",
	"service_name",
	"service_price",
	"pet_name",
	"pet_species",
	"notes",
	"cancellation_reason",
	"cancelled_by",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Нарушение уникального индекса активных слотов возвращается как ErrSlotTaken:
// это ожидаемый исход при гонке двух одновременных коммитов на один слот,
// а не внутренняя ошибка.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"professional_id",
			"client_id",
			"pet_id",
			"service_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"status",
			"amount_paid",
			"service_name",
			"service_price",
			"pet_name",
			"pet_species",
			"notes",
		).
		Values(
			booking.ProfessionalID,
			booking.ClientID,
			booking.PetID,
			booking.ServiceID,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
			booking.Status,
			booking.AmountPaid,
			booking.ServiceName,
			booking.ServicePrice,
			booking.PetName,
			booking.PetSpecies,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation && pqErr.Constraint == activeSlotIndexName {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByClientID получает список бронирований клиента (владельца питомца)
// Опционально фильтрует по статусу
func (r *Repository) GetByClientID(ctx context.Context, clientID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("booking_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByProfessionalWithFilter получает бронирования специалиста с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований.
//
// Внутри транзакции при запросе на конкретную дату добавляет FOR UPDATE:
// строки активных бронирований блокируются на время коммита нового
// бронирования (см. usecase create_booking)
func (r *Repository) GetByProfessionalWithFilter(ctx context.Context, filter domain.ProfessionalBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"professional_id": filter.ProfessionalID})

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - оставляем только занимающие слот
		activeStatusStrings := make([]string, len(domain.ActiveStatuses))
		for i, s := range domain.ActiveStatuses {
			activeStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": activeStatusStrings})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)

	// Для конкретной даты сортируем по времени начала, для периода - сначала новые
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	// Если используется транзакция, добавляем FOR UPDATE для блокировки
	// (только для конкретной даты - для usecase создания бронирования)
	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetActiveByProfessionalAndWeekday получает будущие активные бронирования
// специалиста, попадающие на указанный день недели.
// Используется менеджером окон доступности при проверке безопасности
// удаления и сужения окна
func (r *Repository) GetActiveByProfessionalAndWeekday(ctx context.Context, professionalID int64, fromDate time.Time, dayOfWeek int) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		Where(squirrel.GtOrEq{"booking_date": fromDate}).
		Where("EXTRACT(DOW FROM booking_date) = ?", dayOfWeek).
		OrderBy("booking_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByProfessionalAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByProfessionalAndWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus переводит бронирование из статуса from в статус to.
// Предикат по статусу в WHERE защищает от одновременных переходов:
// если статус успел измениться после чтения, UPDATE не затронет строку
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return r.resolveMissedUpdate(ctx, executor, id)
	}

	return nil
}

// Cancel отменяет бронирование с указанием стороны и причины.
// Статусный предикат пропускает только активные бронирования,
// поэтому завершённое или уже отменённое бронирование не перезаписывается
func (r *Repository) Cancel(ctx context.Context, id int64, cancelledBy domain.CancelledBy, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCanceled).
		Set("cancellation_reason", reason).
		Set("cancelled_by", cancelledBy).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": activeStatusStrings}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return r.resolveMissedUpdate(ctx, executor, id)
	}

	return nil
}

// resolveMissedUpdate различает две причины, по которым UPDATE со статусным
// предикатом не затронул строку: бронирования нет вовсе (ErrBookingNotFound)
// либо его статус уже не проходит предикат (ErrStatusConflict)
func (r *Repository) resolveMissedUpdate(ctx context.Context, executor dbmetrics.DBExecutor, id int64) error {
	query, args, err := psqlbuilder.Select("status").
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: resolveMissedUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var status string
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%w: resolveMissedUpdate - execute query: %v", ErrExecQuery, err)
	}

	return fmt.Errorf("%w: booking %d is %s", ErrStatusConflict, id, status)
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в модель бронирования
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime
	var cancelledBy sql.NullString

	err := row.Scan(
		&booking.ID,
		&booking.ProfessionalID,
		&booking.ClientID,
		&booking.PetID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.Status,
		&booking.AmountPaid,
		&booking.ServiceName,
		&booking.ServicePrice,
		&booking.PetName,
		&booking.PetSpecies,
		&booking.Notes,
		&booking.CancellationReason,
		&cancelledBy,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledBy.Valid {
		by := domain.CancelledBy(cancelledBy.String)
		booking.CancelledBy = &by
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
