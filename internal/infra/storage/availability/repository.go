package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/petlink/PetLink-BookingService/internal/domain"
	"github.com/petlink/PetLink-BookingService/pkg/dbmetrics"
	"github.com/petlink/PetLink-BookingService/pkg/psqlbuilder"
)

var windowColumns = []string{
	"id",
	"professional_id",
	"day_of_week",
	"start_time",
	"end_time",
	"slot_interval_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с окнами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно доступности
func (r *Repository) Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_windows").
		Columns(
			"professional_id",
			"day_of_week",
			"start_time",
			"end_time",
			"slot_interval_minutes",
		).
		Values(
			window.ProfessionalID,
			window.DayOfWeek,
			window.StartTime,
			window.EndTime,
			window.SlotIntervalMinutes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// GetByID получает окно доступности по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	window, err := scanWindow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan window: %v", ErrScanRow, err)
	}

	return window, nil
}

// ListByProfessional получает все окна специалиста,
// отсортированные по (day_of_week, start_time)
func (r *Repository) ListByProfessional(ctx context.Context, professionalID int64) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// ListByProfessionalAndDay получает окна специалиста на конкретный день недели
// Порядок по start_time - генератор слотов обходит окна в хронологическом порядке
func (r *Repository) ListByProfessionalAndDay(ctx context.Context, professionalID int64, dayOfWeek int) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessionalAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessionalAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWindows(rows)
}

// Update обновляет окно доступности
func (r *Repository) Update(ctx context.Context, id int64, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_windows").
		Set("day_of_week", window.DayOfWeek).
		Set("start_time", window.StartTime).
		Set("end_time", window.EndTime).
		Set("slot_interval_minutes", window.SlotIntervalMinutes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING professional_id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ProfessionalID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	window.ID = id
	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// Delete удаляет окно доступности
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanWindow сканирует одну строку результата в модель окна
func scanWindow(row rowScanner) (*domain.AvailabilityWindow, error) {
	var window domain.AvailabilityWindow
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&window.ID,
		&window.ProfessionalID,
		&window.DayOfWeek,
		&window.StartTime,
		&window.EndTime,
		&window.SlotIntervalMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return &window, nil
}

// scanWindows сканирует результаты запроса в слайс окон
func scanWindows(rows *sql.Rows) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0)

	for rows.Next() {
		window, err := scanWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
