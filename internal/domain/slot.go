package domain

import (
	"time"

	"github.com/m04kA/BMC-HallBookingService/pkg/types"
)

// Slot is the addressable unit of reservation: one court of one hall
// at one grid-aligned time on one date. Slots are derived from hall
// configuration, never stored.
type Slot struct {
	HallID      int64
	CourtNumber int
	Date        time.Time
	StartTime   types.TimeString
}

// EnumerateSlots produces every valid slot of the hall on the given date:
// courts 1..CourtsCount, times on the stepMinutes grid inside the
// working-hours window of the date's day group. The last slot starts one
// step before closing. A closed day group yields an empty slice.
//
// The result is a pure function of hall configuration and date, ordered
// by court number ascending, then time ascending.
func EnumerateSlots(hall *Hall, date time.Time, stepMinutes int) []Slot {
	times := EnumerateSlotTimes(hall, date, stepMinutes)
	if len(times) == 0 {
		return []Slot{}
	}

	slots := make([]Slot, 0, len(times)*hall.CourtsCount)
	for court := 1; court <= hall.CourtsCount; court++ {
		for _, t := range times {
			slots = append(slots, Slot{
				HallID:      hall.ID,
				CourtNumber: court,
				Date:        date,
				StartTime:   t,
			})
		}
	}

	return slots
}

// EnumerateSlotTimes возвращает все времена слотов рабочего окна даты
func EnumerateSlotTimes(hall *Hall, date time.Time, stepMinutes int) []types.TimeString {
	open, close, ok := hall.HoursFor(date)
	if !ok || stepMinutes <= 0 {
		return nil
	}

	openMin, err := open.Minutes()
	if err != nil {
		return nil
	}
	closeMin, err := close.Minutes()
	if err != nil {
		return nil
	}

	times := make([]types.TimeString, 0, (closeMin-openMin)/stepMinutes)
	// слот должен целиком помещаться в рабочее окно
	for m := openMin; m+stepMinutes <= closeMin; m += stepMinutes {
		t, err := types.TimeString("00:00").AddMinutes(m)
		if err != nil {
			return nil
		}
		times = append(times, t)
	}

	return times
}

// IsValidSlotTime reports whether startTime is grid-aligned and the slot
// fits entirely inside the hall's working window for the date
func IsValidSlotTime(hall *Hall, date time.Time, startTime types.TimeString, stepMinutes int) bool {
	open, close, ok := hall.HoursFor(date)
	if !ok || stepMinutes <= 0 {
		return false
	}

	openMin, err := open.Minutes()
	if err != nil {
		return false
	}
	closeMin, err := close.Minutes()
	if err != nil {
		return false
	}
	startMin, err := startTime.Minutes()
	if err != nil {
		return false
	}

	if startMin < openMin || startMin+stepMinutes > closeMin {
		return false
	}

	return (startMin-openMin)%stepMinutes == 0
}

// IsValidCourt reports whether the court number is within the hall's range
func IsValidCourt(hall *Hall, courtNumber int) bool {
	return courtNumber >= 1 && courtNumber <= hall.CourtsCount
}
