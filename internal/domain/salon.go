package domain

import "github.com/ciphersage74/elegancecoiffure/pkg/types"

// SalonInfo public salon profile
type SalonInfo struct {
	ID                 int64
	Name               string
	Description        *string
	Address            *string
	Phone              *string
	Email              *string
	LogoURL            *string
	CancellationPolicy *string
}

// GalleryImage one picture of the salon gallery
type GalleryImage struct {
	ID           int64
	ImageURL     string
	Title        *string
	DisplayOrder int
}

// BusinessHours salon opening hours for one weekday (Monday=0)
type BusinessHours struct {
	ID        int64
	DayOfWeek int
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
	IsClosed  bool
}
