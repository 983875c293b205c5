package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/pkg/dbmetrics"
	"github.com/ciphersage74/elegancecoiffure/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"category",
	"image_url",
	"is_active",
}

var staffColumns = []string{
	"s.id",
	"s.user_id",
	"u.first_name",
	"u.last_name",
	"s.position",
	"s.bio",
	"s.specialties",
	"s.photo_url",
	"s.years_experience",
	"s.is_active",
	"COALESCE(array_agg(ss.service_id ORDER BY ss.service_id) FILTER (WHERE ss.service_id IS NOT NULL), '{}')",
}

// Repository репозиторий каталога: услуги и мастера
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает услугу по ID (включая неактивные)
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.DurationMinutes,
		&s.Price,
		&s.Category,
		&s.ImageURL,
		&s.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListActiveServices активные услуги, сгруппированные по категории
func (r *Repository) ListActiveServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("category ASC NULLS LAST", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Description,
			&s.DurationMinutes,
			&s.Price,
			&s.Category,
			&s.ImageURL,
			&s.IsActive,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListCategories различные категории активных услуг
func (r *Repository) ListCategories(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT category").
		From("services").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.NotEq{"category": nil}).
		OrderBy("category ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// GetStaff получает мастера с ID назначенных ему услуг
func (r *Repository) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := staffQuery().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staff, err := scanStaff(rows)
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return nil, ErrStaffNotFound
	}

	return staff[0], nil
}

// ListStaffForService активные мастера, которым назначена услуга
func (r *Repository) ListStaffForService(ctx context.Context, serviceID int64) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := staffQuery().
		Where(squirrel.Eq{"s.is_active": true}).
		Where(squirrel.Expr("s.id IN (SELECT staff_id FROM staff_services WHERE service_id = ?)", serviceID)).
		OrderBy("u.first_name ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffForService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaffForService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanStaff(rows)
}

// GetStaffIDsForService ID активных мастеров, которым назначена услуга
func (r *Repository) GetStaffIDsForService(ctx context.Context, serviceID int64) ([]int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("ss.staff_id").
		From("staff_services ss").
		Join("staff s ON s.id = ss.staff_id").
		Where(squirrel.Eq{"ss.service_id": serviceID, "s.is_active": true}).
		OrderBy("ss.staff_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffIDsForService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffIDsForService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetStaffIDsForService - scan row: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStaffIDsForService - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

func staffQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(staffColumns...).
		From("staff s").
		Join("users u ON u.id = s.user_id").
		LeftJoin("staff_services ss ON ss.staff_id = s.id").
		GroupBy("s.id", "u.first_name", "u.last_name")
}

func scanStaff(rows *sql.Rows) ([]*domain.Staff, error) {
	result := make([]*domain.Staff, 0)

	for rows.Next() {
		var s domain.Staff
		var serviceIDs pq.Int64Array

		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.FirstName,
			&s.LastName,
			&s.Position,
			&s.Bio,
			&s.Specialties,
			&s.PhotoURL,
			&s.YearsExperience,
			&s.IsActive,
			&serviceIDs,
		); err != nil {
			return nil, fmt.Errorf("%w: scanStaff - scan row: %v", ErrScanRow, err)
		}

		s.ServiceIDs = []int64(serviceIDs)
		result = append(result, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanStaff - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
