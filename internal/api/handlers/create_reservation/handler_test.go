package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
	uc "github.com/m04kA/BMC-HallBookingService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	out *uc.Out
	err error
	in  *uc.In
}

func (f *fakeUseCase) Execute(_ context.Context, in *uc.In) (*uc.Out, error) {
	f.in = in
	return f.out, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"hall_id": 1,
	"court_number": 2,
	"booking_date": "2026-09-07",
	"start_time": "10:00",
	"customer_name": "Иван Петров",
	"customer_phone": "+79001234567"
}`

func doRequest(t *testing.T, usecase UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(usecase, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	fake := &fakeUseCase{
		out: &uc.Out{
			Reservation: &domain.Reservation{
				ID:              7,
				HallID:          1,
				HallName:        "Зал на Ленина",
				CourtNumber:     2,
				BookingDate:     time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
				StartTime:       "10:00",
				DurationMinutes: 30,
				Status:          domain.StatusPending,
				CustomerName:    "Иван Петров",
				CustomerPhone:   "+79001234567",
				TotalPrice:      600,
			},
		},
	}

	rec := doRequest(t, fake, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, fake.in)
	assert.Equal(t, int64(1), fake.in.HallID)
	assert.Equal(t, "2026-09-07", fake.in.BookingDate.Format(domain.DateFormat))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(7), resp["id"])
	assert.Equal(t, "pending", resp["status"])
}

func TestHandle_SlotTakenReturnsConflict(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: uc.ErrSlotTaken}, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), msgSlotTaken)
}

func TestHandle_HallNotBookableReturnsConflict(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: uc.ErrHallNotBookable}, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_SlotInPastReturnsBadRequest(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: uc.ErrSlotInPast}, validBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgSlotInPast)
}

func TestHandle_HallNotFound(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{err: uc.ErrHallNotFound}, validBody)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "{не json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	body := strings.Replace(validBody, "2026-09-07", "07.09.2026", 1)
	rec := doRequest(t, &fakeUseCase{}, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidDate)
}
