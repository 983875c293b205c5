package salon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ciphersage74/elegancecoiffure/internal/domain"
	"github.com/ciphersage74/elegancecoiffure/pkg/dbmetrics"
	"github.com/ciphersage74/elegancecoiffure/pkg/psqlbuilder"
)

var infoColumns = []string{
	"id",
	"name",
	"description",
	"address",
	"phone",
	"email",
	"logo_url",
	"cancellation_policy",
}

// Repository информация о салоне, галерея и часы работы
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetInfo единственная запись salon_info (наименьший id)
func (r *Repository) GetInfo(ctx context.Context) (*domain.SalonInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(infoColumns...).
		From("salon_info").
		OrderBy("id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetInfo - build select query: %v", ErrBuildQuery, err)
	}

	var info domain.SalonInfo
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&info.ID,
		&info.Name,
		&info.Description,
		&info.Address,
		&info.Phone,
		&info.Email,
		&info.LogoURL,
		&info.CancellationPolicy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSalonInfoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetInfo - scan row: %v", ErrScanRow, err)
	}

	return &info, nil
}

// UpsertInfo обновляет запись салона или создает её, если таблица пуста
func (r *Repository) UpsertInfo(ctx context.Context, info *domain.SalonInfo) (*domain.SalonInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salon_info").
		Columns("id", "name", "description", "address", "phone", "email", "logo_url", "cancellation_policy").
		Values(1, info.Name, info.Description, info.Address, info.Phone, info.Email, info.LogoURL, info.CancellationPolicy).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			logo_url = EXCLUDED.logo_url,
			cancellation_policy = EXCLUDED.cancellation_policy
		RETURNING id`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertInfo - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&info.ID); err != nil {
		return nil, fmt.Errorf("%w: UpsertInfo - execute: %v", ErrExecQuery, err)
	}

	return info, nil
}

// ListGallery изображения галереи в порядке отображения
func (r *Repository) ListGallery(ctx context.Context) ([]*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "image_url", "title", "display_order").
		From("gallery").
		OrderBy("display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListGallery - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListGallery - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.ID, &img.ImageURL, &img.Title, &img.DisplayOrder); err != nil {
			return nil, fmt.Errorf("%w: ListGallery - scan row: %v", ErrScanRow, err)
		}
		images = append(images, &img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListGallery - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}

// ListBusinessHours часы работы салона, понедельник первым
func (r *Repository) ListBusinessHours(ctx context.Context) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "day_of_week", "open_time", "close_time", "is_closed").
		From("business_hours").
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHours, 0)
	for rows.Next() {
		var h domain.BusinessHours
		if err := rows.Scan(&h.ID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.IsClosed); err != nil {
			return nil, fmt.Errorf("%w: ListBusinessHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBusinessHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}
