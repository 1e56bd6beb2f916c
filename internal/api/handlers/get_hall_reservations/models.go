package get_hall_reservations

import (
	"fmt"
	"net/url"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers"
	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// parseFilter собирает фильтр бронирований из query-параметров
//
// Поддерживаются: court (номер корта), date (конкретная дата),
// start_date/end_date (период), status, include_cancelled
func parseFilter(hallID int64, query url.Values) (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{HallID: hallID}

	if raw := query.Get("court"); raw != "" {
		var court int
		if _, err := fmt.Sscanf(raw, "%d", &court); err != nil || court <= 0 {
			return filter, fmt.Errorf("invalid court %q", raw)
		}
		filter.CourtNumber = &court
	}

	if raw := query.Get("date"); raw != "" {
		date, err := handlers.ParseDate(raw)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &date
		filter.EndDate = &date
	} else {
		if raw := query.Get("start_date"); raw != "" {
			date, err := handlers.ParseDate(raw)
			if err != nil {
				return filter, err
			}
			filter.StartDate = &date
		}
		if raw := query.Get("end_date"); raw != "" {
			date, err := handlers.ParseDate(raw)
			if err != nil {
				return filter, err
			}
			filter.EndDate = &date
		}
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.ReservationStatus(raw)
		filter.Status = &status
	}

	filter.IncludeInactive = query.Get("include_cancelled") == "true"

	return filter, nil
}

// response список бронирований зала
type response struct {
	Reservations []handlers.ReservationView `json:"reservations"`
}
