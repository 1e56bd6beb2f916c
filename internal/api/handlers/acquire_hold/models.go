package acquire_hold

import "time"

// request параметры удержания слота
type request struct {
	HallID      int64  `json:"hall_id"`
	CourtNumber int    `json:"court_number"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
}

// response выданный холд
type response struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
