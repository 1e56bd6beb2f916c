package halls

import (
	"fmt"
	"strings"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// validateHall проверяет данные зала перед записью
func validateHall(hall *domain.Hall) error {
	if strings.TrimSpace(hall.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	if hall.CourtsCount < domain.MinCourtsCount || hall.CourtsCount > domain.MaxCourtsCount {
		return fmt.Errorf("%w: courts_count must be between %d and %d",
			ErrValidation, domain.MinCourtsCount, domain.MaxCourtsCount)
	}

	if hall.PricePerHour < 0 {
		return fmt.Errorf("%w: price_per_hour must not be negative", ErrValidation)
	}

	for group, window := range hall.WorkingHours {
		if group != domain.DayGroupWeekdays && group != domain.DayGroupWeekend {
			return fmt.Errorf("%w: unknown working hours group %q", ErrValidation, group)
		}
		// Пустое окно означает закрытый день, это валидно
		if strings.TrimSpace(window) == "" {
			continue
		}
		if _, _, ok := domain.ParseWorkingWindow(window); !ok {
			return fmt.Errorf("%w: malformed working hours window %q for group %q", ErrValidation, window, group)
		}
	}

	return nil
}
