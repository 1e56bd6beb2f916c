package get_available_slots

import (
	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	uc "github.com/m04kA/BMC-HallBookingService/internal/usecase/get_available_slots"
)

// slotView свободный слот в ответе API
type slotView struct {
	CourtNumber int    `json:"court_number"`
	StartTime   string `json:"start_time"`
}

// response свободные слоты зала на дату
type response struct {
	HallID      int64      `json:"hall_id"`
	Date        string     `json:"date"`
	StepMinutes int        `json:"step_minutes"`
	Slots       []slotView `json:"slots"`
}

// newResponse собирает ответ из результата usecase
func newResponse(out *uc.Out) response {
	slots := make([]slotView, 0, len(out.Slots))
	for _, s := range out.Slots {
		slots = append(slots, slotView{
			CourtNumber: s.CourtNumber,
			StartTime:   string(s.StartTime),
		})
	}

	return response{
		HallID:      out.HallID,
		Date:        out.Date.Format(domain.DateFormat),
		StepMinutes: out.StepMinutes,
		Slots:       slots,
	}
}
