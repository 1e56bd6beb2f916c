package acquire_hold

import (
	"time"

	"github.com/m04kA/BMC-HallBookingService/pkg/types"
)

// In параметры удержания слота
type In struct {
	HallID      int64
	CourtNumber int
	Date        time.Time
	StartTime   types.TimeString
}

// Out выданный холд
type Out struct {
	Token     string
	ExpiresAt time.Time
}
