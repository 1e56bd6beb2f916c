package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-HallBookingService/pkg/types"
)

func TestParseWorkingWindow(t *testing.T) {
	tests := []struct {
		name      string
		window    string
		wantOpen  types.TimeString
		wantClose types.TimeString
		wantOK    bool
	}{
		{name: "regular window", window: "06:00 - 23:00", wantOpen: "06:00", wantClose: "23:00", wantOK: true},
		{name: "no spaces", window: "08:00-22:00", wantOpen: "08:00", wantClose: "22:00", wantOK: true},
		{name: "midnight close", window: "10:00 - 24:00", wantOpen: "10:00", wantClose: "24:00", wantOK: true},
		{name: "empty", window: "", wantOK: false},
		{name: "no dash", window: "06:00 23:00", wantOK: false},
		{name: "inverted", window: "23:00 - 06:00", wantOK: false},
		{name: "equal bounds", window: "10:00 - 10:00", wantOK: false},
		{name: "garbage", window: "выходной", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, close, ok := ParseWorkingWindow(tt.window)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantOpen, open)
				assert.Equal(t, tt.wantClose, close)
			}
		})
	}
}

func TestDayGroupFor(t *testing.T) {
	assert.Equal(t, DayGroupWeekdays, DayGroupFor(time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)))  // понедельник
	assert.Equal(t, DayGroupWeekdays, DayGroupFor(time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC))) // пятница
	assert.Equal(t, DayGroupWeekend, DayGroupFor(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)))   // суббота
	assert.Equal(t, DayGroupWeekend, DayGroupFor(time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)))   // воскресенье
}

func TestHall_HoursFor(t *testing.T) {
	hall := testHall()

	open, close, ok := hall.HoursFor(weekday)
	require.True(t, ok)
	assert.Equal(t, types.TimeString("06:00"), open)
	assert.Equal(t, types.TimeString("23:00"), close)

	hall.WorkingHours = WorkingHours{DayGroupWeekdays: "06:00 - 23:00"}
	_, _, ok = hall.HoursFor(weekend)
	assert.False(t, ok)
}

func TestHall_SlotPrice(t *testing.T) {
	hall := testHall()

	assert.InDelta(t, 600.0, hall.SlotPrice(30), 0.001)
	assert.InDelta(t, 1200.0, hall.SlotPrice(60), 0.001)
}

func TestHall_IsBookable(t *testing.T) {
	hall := testHall()
	assert.True(t, hall.IsBookable())

	hall.IsActive = false
	assert.False(t, hall.IsBookable())

	hall.IsActive = true
	hall.CourtsCount = 0
	assert.False(t, hall.IsBookable())
}
