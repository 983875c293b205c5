package domain

import (
	"time"

	"github.com/ciphersage74/elegancecoiffure/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is one of the known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether a booking in this status occupies staff time
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking represents a client reservation with one staff member for one service
type Booking struct {
	ID        int64
	ClientID  int64
	StaffID   int64
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString // фиксируется при создании, не пересчитывается
	Status    BookingStatus
	Notes     *string

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	StaffName    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its staff member's time
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsOwnedBy returns true if the booking belongs to the client
func (b *Booking) IsOwnedBy(clientID int64) bool {
	return b.ClientID == clientID
}

// BookingsFilter фильтр для административного списка бронирований
type BookingsFilter struct {
	Date    *time.Time     // конкретный день (опционально)
	StaffID *int64         // фильтр по мастеру (опционально)
	Status  *BookingStatus // фильтр по статусу (опционально)
}
