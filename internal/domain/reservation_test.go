package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservation_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			res := &Reservation{Status: tt.from}
			assert.Equal(t, tt.want, res.CanTransitionTo(tt.to))
		})
	}
}

func TestReservation_IsActive(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).IsActive())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Reservation{Status: StatusCancelled}).IsActive())
}

func TestReservation_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Reservation{Status: StatusCancelled}).CanBeCancelled())
}

func TestReservationStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, ReservationStatus("archived").IsValid())
}
