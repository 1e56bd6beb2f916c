package domain

import (
	"strings"
	"time"

	"github.com/m04kA/BMC-HallBookingService/pkg/types"
)

// Day groups used as keys of the hall working-hours mapping.
// Weekday and weekend schedules differ; no holiday calendar is modelled.
const (
	DayGroupWeekdays = "weekdays"
	DayGroupWeekend  = "weekend"
)

// Hall represents a badminton hall available for booking
type Hall struct {
	ID                  int64
	Name                string
	CourtsCount         int
	PricePerHour        float64
	Description         string
	DetailedDescription *string
	Features            []string
	Amenities           []string
	Specifications      map[string]string
	WorkingHours        WorkingHours
	Images              []string
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// WorkingHours расписание зала: группа дней → окно "HH:MM - HH:MM"
// Пустое или отсутствующее окно означает, что зал закрыт в эти дни
type WorkingHours map[string]string

// IsBookable returns true if the hall can accept new reservations
func (h *Hall) IsBookable() bool {
	return h.IsActive && h.CourtsCount >= MinCourtsCount
}

// SlotPrice returns the price of a single booking slot of the given length
func (h *Hall) SlotPrice(stepMinutes int) float64 {
	return h.PricePerHour * float64(stepMinutes) / 60.0
}

// HoursFor returns the opening window for the day group of the given date.
// ok is false when the hall is closed on that day group or the window
// is malformed.
func (h *Hall) HoursFor(date time.Time) (open, close types.TimeString, ok bool) {
	window, exists := h.WorkingHours[DayGroupFor(date)]
	if !exists {
		return "", "", false
	}
	return ParseWorkingWindow(window)
}

// DayGroupFor returns the working-hours day group for a calendar date
func DayGroupFor(date time.Time) string {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayGroupWeekend
	default:
		return DayGroupWeekdays
	}
}

// ParseWorkingWindow разбирает окно вида "06:00 - 23:00"
// Возвращает ok=false для пустого или некорректного окна
func ParseWorkingWindow(window string) (open, close types.TimeString, ok bool) {
	parts := strings.SplitN(window, "-", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	open, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", "", false
	}

	closeRaw := strings.TrimSpace(parts[1])
	if closeRaw == "24:00" {
		// "24:00" допустимо как граница закрытия
		close = types.TimeString(closeRaw)
	} else {
		close, err = types.NewTimeStringFromString(closeRaw)
		if err != nil {
			return "", "", false
		}
	}

	if !open.IsBefore(close) {
		return "", "", false
	}

	return open, close, true
}

// HallsFilter фильтр для получения списка залов
type HallsFilter struct {
	OnlyActive bool // true - только активные залы (публичный каталог)
}
