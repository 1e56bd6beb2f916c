package create_reservation

import (
	"time"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	"github.com/m04kA/BMC-HallBookingService/pkg/types"
)

// In входные данные создания бронирования
type In struct {
	HallID      int64
	CourtNumber int
	BookingDate time.Time
	StartTime   types.TimeString

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Notes         *string

	// Токен холда, полученный на шаге выбора слота (опционально)
	HoldToken *string
}

// Out результат создания бронирования
type Out struct {
	Reservation *domain.Reservation
}
