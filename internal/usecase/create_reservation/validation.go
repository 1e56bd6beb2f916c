package create_reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateIn проверяет данные формы бронирования
func validateIn(in *In) error {
	if in.HallID <= 0 {
		return fmt.Errorf("%w: hall_id must be positive", ErrValidation)
	}
	if in.CourtNumber <= 0 {
		return fmt.Errorf("%w: court_number must be positive", ErrValidation)
	}
	if in.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking_date is required", ErrValidation)
	}
	if err := in.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start_time: %v", ErrValidation, err)
	}

	name := strings.TrimSpace(in.CustomerName)
	if len([]rune(name)) < domain.MinCustomerNameLength || len([]rune(name)) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer_name must be between %d and %d characters",
			ErrValidation, domain.MinCustomerNameLength, domain.MaxCustomerNameLength)
	}

	phone := strings.TrimSpace(in.CustomerPhone)
	if len(phone) < domain.MinPhoneLength || len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customer_phone must be between %d and %d characters",
			ErrValidation, domain.MinPhoneLength, domain.MaxPhoneLength)
	}

	if in.CustomerEmail != nil && *in.CustomerEmail != "" {
		if !emailPattern.MatchString(*in.CustomerEmail) {
			return fmt.Errorf("%w: customer_email has invalid format", ErrValidation)
		}
	}

	if in.Notes != nil && len([]rune(*in.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrValidation, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotTiming проверяет, что слот лежит в допустимом горизонте
// бронирования относительно текущего момента
func validateSlotTiming(in *In, now time.Time, minNoticeMinutes, advanceDays int) error {
	startMin, err := in.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: start_time: %v", ErrValidation, err)
	}

	slotStart := time.Date(
		in.BookingDate.Year(), in.BookingDate.Month(), in.BookingDate.Day(),
		0, 0, 0, 0, now.Location(),
	).Add(time.Duration(startMin) * time.Minute)

	if slotStart.Before(now.Add(time.Duration(minNoticeMinutes) * time.Minute)) {
		return ErrSlotInPast
	}

	if advanceDays > 0 {
		horizon := now.AddDate(0, 0, advanceDays)
		if slotStart.After(horizon) {
			return fmt.Errorf("%w: booking_date is beyond the booking horizon", ErrValidation)
		}
	}

	return nil
}
