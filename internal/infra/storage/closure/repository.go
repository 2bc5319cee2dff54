package closure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
	"github.com/bossbaby/BBS-BookingService/pkg/dbmetrics"
	"github.com/bossbaby/BBS-BookingService/pkg/psqlbuilder"
)

var closureColumns = []string{
	"id",
	"closure_date",
	"start_time",
	"end_time",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с перерывами студии
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория перерывов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый перерыв студии
func (r *Repository) Create(ctx context.Context, closure *domain.StudioClosure) (*domain.StudioClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("studio_closures").
		Columns("closure_date", "start_time", "end_time", "reason").
		Values(closure.Date, closure.StartTime, closure.EndTime, closure.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&closure.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	closure.CreatedAt = createdAt.Time
	return closure, nil
}

// GetByDate получает все перерывы на указанную дату
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.StudioClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("studio_closures").
		Where(squirrel.Eq{"closure_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClosures(rows)
}

// GetAll получает все перерывы, сначала ближайшие
func (r *Repository) GetAll(ctx context.Context) ([]*domain.StudioClosure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("studio_closures").
		OrderBy("closure_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanClosures(rows)
}

// Delete удаляет перерыв по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("studio_closures").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

// scanClosures сканирует результаты запроса в слайс перерывов
func scanClosures(rows *sql.Rows) ([]*domain.StudioClosure, error) {
	closures := make([]*domain.StudioClosure, 0)

	for rows.Next() {
		var closure domain.StudioClosure
		var createdAt sql.NullTime

		err := rows.Scan(
			&closure.ID,
			&closure.Date,
			&closure.StartTime,
			&closure.EndTime,
			&closure.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanClosures - scan row: %w", ErrScanRow, err)
		}

		closure.CreatedAt = createdAt.Time
		closures = append(closures, &closure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClosures - rows error: %w", ErrScanRow, err)
	}

	return closures, nil
}
