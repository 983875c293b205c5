package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/pkg/dbmetrics"
	"github.com/ciphersage74/elegancecoiffure/pkg/psqlbuilder"
)

const pqForeignKeyViolation = "23503"

var hoursColumns = []string{"id", "staff_id", "day_of_week", "start_time", "end_time"}

var unavailabilityColumns = []string{"id", "staff_id", "date", "start_time", "end_time", "is_available", "reason"}

// Repository рабочие часы и периоды недоступности мастеров
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStaffAndDay рабочие окна мастера на день недели (0=понедельник)
func (r *Repository) GetByStaffAndDay(ctx context.Context, staffID int64, dayOfWeek int) ([]*domain.WorkingHoursWindow, error) {
	return r.queryHours(ctx, "GetByStaffAndDay", squirrel.Eq{"staff_id": staffID, "day_of_week": dayOfWeek})
}

// GetWorkingHours все рабочие окна мастера за неделю
func (r *Repository) GetWorkingHours(ctx context.Context, staffID int64) ([]*domain.WorkingHoursWindow, error) {
	return r.queryHours(ctx, "GetWorkingHours", squirrel.Eq{"staff_id": staffID})
}

func (r *Repository) queryHours(ctx context.Context, op string, where squirrel.Eq) ([]*domain.WorkingHoursWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("working_hours").
		Where(where).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	windows := make([]*domain.WorkingHoursWindow, 0)
	for rows.Next() {
		var w domain.WorkingHoursWindow
		if err := rows.Scan(&w.ID, &w.StaffID, &w.DayOfWeek, &w.StartTime, &w.EndTime); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		windows = append(windows, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return windows, nil
}

// ReplaceWorkingHours удаляет все окна мастера и вставляет новые.
// Вызывать внутри транзакции, иначе замена не атомарна.
func (r *Repository) ReplaceWorkingHours(ctx context.Context, staffID int64, windows []*domain.WorkingHoursWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("working_hours").Columns("staff_id", "day_of_week", "start_time", "end_time")
	for _, w := range windows {
		insert = insert.Values(staffID, w.DayOfWeek, w.StartTime, w.EndTime)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWorkingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return mapWriteError("ReplaceWorkingHours", err)
	}

	return nil
}

// GetByStaffAndDate периоды недоступности мастера на дату
func (r *Repository) GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.UnavailabilityPeriod, error) {
	return r.queryUnavailability(ctx, "GetByStaffAndDate", squirrel.Eq{"staff_id": staffID, "date": date})
}

// ListUnavailability периоды мастера начиная с from (nil - все)
func (r *Repository) ListUnavailability(ctx context.Context, staffID int64, from *time.Time) ([]*domain.UnavailabilityPeriod, error) {
	where := squirrel.And{squirrel.Eq{"staff_id": staffID}}
	if from != nil {
		where = append(where, squirrel.GtOrEq{"date": *from})
	}
	return r.queryUnavailability(ctx, "ListUnavailability", where)
}

func (r *Repository) queryUnavailability(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.UnavailabilityPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(unavailabilityColumns...).
		From("staff_unavailability").
		Where(where).
		OrderBy("date ASC", "start_time ASC NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	periods := make([]*domain.UnavailabilityPeriod, 0)
	for rows.Next() {
		var p domain.UnavailabilityPeriod
		if err := rows.Scan(&p.ID, &p.StaffID, &p.Date, &p.StartTime, &p.EndTime, &p.IsAvailable, &p.Reason); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		periods = append(periods, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return periods, nil
}

// CreateUnavailability добавляет период недоступности
func (r *Repository) CreateUnavailability(ctx context.Context, p *domain.UnavailabilityPeriod) (*domain.UnavailabilityPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_unavailability").
		Columns("staff_id", "date", "start_time", "end_time", "is_available", "reason").
		Values(p.StaffID, p.Date, p.StartTime, p.EndTime, p.IsAvailable, p.Reason).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateUnavailability - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return nil, mapWriteError("CreateUnavailability", err)
	}

	return p, nil
}

// DeleteUnavailability удаляет период недоступности
func (r *Repository) DeleteUnavailability(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_unavailability").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteUnavailability - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteUnavailability - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteUnavailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUnavailabilityNotFound
	}

	return nil
}

func mapWriteError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
		return fmt.Errorf("%w: %s: %s", ErrStaffNotFound, op, pqErr.Constraint)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s: no id returned", ErrExecQuery, op)
	}
	return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
}
