package create_reservation

// request тело запроса создания бронирования
type request struct {
	HallID      int64  `json:"hall_id"`
	CourtNumber int    `json:"court_number"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`

	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	Notes         *string `json:"notes"`

	HoldToken *string `json:"hold_token"`
}
