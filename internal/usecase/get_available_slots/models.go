package get_available_slots

import (
	"time"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// In параметры запроса свободных слотов
type In struct {
	HallID int64
	Date   time.Time
}

// Out свободные слоты зала на дату
// Слоты упорядочены по номеру корта, затем по времени начала
type Out struct {
	HallID      int64
	Date        time.Time
	StepMinutes int
	Slots       []domain.Slot
}
