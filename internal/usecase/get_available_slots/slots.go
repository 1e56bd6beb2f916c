package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// occupiedKeys собирает множество занятых пар (корт, время) из активных
// бронирований. Отмененные бронирования слот не занимают.
func occupiedKeys(reservations []*domain.Reservation) map[string]struct{} {
	occupied := make(map[string]struct{}, len(reservations))
	for _, r := range reservations {
		if !r.IsActive() {
			continue
		}
		occupied[slotKey(r.CourtNumber, string(r.StartTime))] = struct{}{}
	}
	return occupied
}

// filterFree возвращает слоты, не входящие в множество занятых
// Порядок исходного перечисления сохраняется
func filterFree(slots []domain.Slot, occupied map[string]struct{}) []domain.Slot {
	free := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if _, taken := occupied[slotKey(s.CourtNumber, string(s.StartTime))]; taken {
			continue
		}
		free = append(free, s)
	}
	return free
}

// filterByNotice убирает слоты, начинающиеся раньше now + notice
// Применяется только к сегодняшней дате: прошедшие и слишком близкие
// слоты недоступны для бронирования
//
// Сравниваются полные моменты времени, а не минуты внутри суток: когда
// now + notice переваливает за полночь, все слоты сегодняшнего дня уже
// позади и список должен быть пустым
func filterByNotice(slots []domain.Slot, date time.Time, now time.Time, noticeMinutes int) []domain.Slot {
	sameDay := date.Year() == now.Year() && date.YearDay() == now.YearDay()
	if !sameDay {
		return slots
	}

	cutoff := now.Add(time.Duration(noticeMinutes) * time.Minute)
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())

	filtered := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		startMin, err := s.StartTime.Minutes()
		if err != nil {
			continue
		}
		if midnight.Add(time.Duration(startMin) * time.Minute).Before(cutoff) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

func slotKey(courtNumber int, startTime string) string {
	return fmt.Sprintf("%d|%s", courtNumber, startTime)
}
