package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-HallBookingService/pkg/types"
)

func testHall() *Hall {
	return &Hall{
		ID:           1,
		Name:         "Зал на Ленина",
		CourtsCount:  3,
		PricePerHour: 1200,
		IsActive:     true,
		WorkingHours: WorkingHours{
			DayGroupWeekdays: "06:00 - 23:00",
			DayGroupWeekend:  "08:00 - 22:00",
		},
	}
}

// понедельник
var weekday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

// суббота
var weekend = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

func TestEnumerateSlots_WeekdayGrid(t *testing.T) {
	hall := testHall()

	slots := EnumerateSlots(hall, weekday, 30)

	// 17 часов работы, 34 слота на корт, 3 корта
	require.Len(t, slots, 102)

	assert.Equal(t, 1, slots[0].CourtNumber)
	assert.Equal(t, types.TimeString("06:00"), slots[0].StartTime)

	last := slots[len(slots)-1]
	assert.Equal(t, 3, last.CourtNumber)
	assert.Equal(t, types.TimeString("22:30"), last.StartTime)

	// порядок: корт по возрастанию, внутри корта время по возрастанию
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if prev.CourtNumber == cur.CourtNumber {
			assert.True(t, prev.StartTime.IsBefore(cur.StartTime))
		} else {
			assert.Equal(t, prev.CourtNumber+1, cur.CourtNumber)
		}
	}
}

func TestEnumerateSlots_WeekendWindow(t *testing.T) {
	hall := testHall()

	slots := EnumerateSlots(hall, weekend, 30)

	// 14 часов работы, 28 слотов на корт
	require.Len(t, slots, 84)
	assert.Equal(t, types.TimeString("08:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("21:30"), slots[len(slots)-1].StartTime)
}

func TestEnumerateSlots_ClosedDay(t *testing.T) {
	hall := testHall()
	hall.WorkingHours = WorkingHours{DayGroupWeekdays: "06:00 - 23:00"}

	slots := EnumerateSlots(hall, weekend, 30)

	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestEnumerateSlotTimes_MidnightClose(t *testing.T) {
	hall := testHall()
	hall.WorkingHours[DayGroupWeekdays] = "22:00 - 24:00"

	times := EnumerateSlotTimes(hall, weekday, 30)

	require.Len(t, times, 4)
	assert.Equal(t, types.TimeString("23:30"), times[3])
}

func TestEnumerateSlotTimes_SlotMustFitWindow(t *testing.T) {
	hall := testHall()
	hall.WorkingHours[DayGroupWeekdays] = "10:00 - 11:45"

	times := EnumerateSlotTimes(hall, weekday, 30)

	// 11:30 не влезает целиком до 11:45
	require.Len(t, times, 3)
	assert.Equal(t, types.TimeString("11:00"), times[2])
}

func TestIsValidSlotTime(t *testing.T) {
	hall := testHall()

	assert.True(t, IsValidSlotTime(hall, weekday, "06:00", 30))
	assert.True(t, IsValidSlotTime(hall, weekday, "22:30", 30))

	// вне рабочего окна
	assert.False(t, IsValidSlotTime(hall, weekday, "05:30", 30))
	// последний слот не помещается до закрытия
	assert.False(t, IsValidSlotTime(hall, weekday, "22:45", 30))
	// мимо сетки
	assert.False(t, IsValidSlotTime(hall, weekday, "06:15", 30))
}

func TestIsValidCourt(t *testing.T) {
	hall := testHall()

	assert.True(t, IsValidCourt(hall, 1))
	assert.True(t, IsValidCourt(hall, 3))
	assert.False(t, IsValidCourt(hall, 0))
	assert.False(t, IsValidCourt(hall, 4))
}
