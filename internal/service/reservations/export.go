package reservations

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

const exportSheet = "Бронирования"

var exportHeaders = []string{
	"ID",
	"Зал",
	"Корт",
	"Дата",
	"Время",
	"Длительность (мин)",
	"Статус",
	"Клиент",
	"Телефон",
	"Email",
	"Стоимость",
	"Примечания",
	"Создано",
}

var exportStatusNames = map[domain.ReservationStatus]string{
	domain.StatusPending:   "Ожидает подтверждения",
	domain.StatusConfirmed: "Подтверждено",
	domain.StatusCancelled: "Отменено",
}

// ExportToExcel выгружает бронирования зала в xlsx для администратора
func (s *Service) ExportToExcel(ctx context.Context, filter domain.ReservationsFilter) ([]byte, error) {
	list, err := s.ListByHall(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create sheet: %v", ErrInternal, err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(exportSheet, cell, header)
	}

	for i, res := range list {
		email := ""
		if res.CustomerEmail != nil {
			email = *res.CustomerEmail
		}
		notes := ""
		if res.Notes != nil {
			notes = *res.Notes
		}

		statusName := exportStatusNames[res.Status]
		if statusName == "" {
			statusName = string(res.Status)
		}

		values := []interface{}{
			res.ID,
			res.HallName,
			res.CourtNumber,
			res.BookingDate.Format(domain.DateFormat),
			string(res.StartTime),
			res.DurationMinutes,
			statusName,
			res.CustomerName,
			res.CustomerPhone,
			email,
			res.TotalPrice,
			notes,
			res.CreatedAt.Format("2006-01-02 15:04"),
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(exportSheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: failed to write workbook: %v", ErrInternal, err)
	}

	return buf.Bytes(), nil
}
