package domain

import (
	"time"

	"github.com/m04kA/BMC-HallBookingService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid returns true for a known reservation status
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Reservation is the authoritative booking record of one slot.
// At most one reservation in an active status may exist per
// (hall, court, date, start time) tuple; the constraint is enforced
// by the storage layer at write time.
type Reservation struct {
	ID              int64
	HallID          int64
	CourtNumber     int
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          ReservationStatus

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	// Denormalized data for history: the reservation stays meaningful
	// even after the hall is renamed or repriced
	HallName   string
	TotalPrice float64

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status change is allowed.
// Allowed: pending→confirmed, pending→cancelled, confirmed→cancelled.
// Cancelled is terminal; confirmed never goes back to pending.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// ReservationsFilter фильтр для получения бронирований зала
type ReservationsFilter struct {
	HallID          int64              // Обязательный параметр
	CourtNumber     *int               // Фильтр по корту (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные бронирования
}

// ActiveStatuses статусы, при которых бронирование занимает слот
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, не занимающие слот
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}
