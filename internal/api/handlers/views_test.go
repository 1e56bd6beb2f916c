package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BMC-HallBookingService/internal/domain"
)

// Пустые коллекции зала сериализуются как [] и {}, а не null
func TestNewHallView_EmptyCollections(t *testing.T) {
	view := NewHallView(&domain.Hall{ID: 1, Name: "Зал на Ленина", CourtsCount: 3})

	data, err := json.Marshal(view)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.JSONEq(t, `[]`, string(raw["features"]))
	assert.JSONEq(t, `[]`, string(raw["amenities"]))
	assert.JSONEq(t, `[]`, string(raw["images"]))
	assert.JSONEq(t, `{}`, string(raw["specifications"]))
	assert.JSONEq(t, `{}`, string(raw["working_hours"]))
}

func TestNewHallView_PopulatedCollections(t *testing.T) {
	view := NewHallView(&domain.Hall{
		ID:             1,
		Name:           "Зал на Ленина",
		CourtsCount:    3,
		Features:       []string{"паркет"},
		Specifications: map[string]string{"высота потолка": "9 м"},
		WorkingHours: domain.WorkingHours{
			domain.DayGroupWeekdays: "06:00 - 23:00",
		},
	})

	assert.Equal(t, []string{"паркет"}, view.Features)
	assert.Equal(t, "9 м", view.Specifications["высота потолка"])
	assert.Equal(t, "06:00 - 23:00", view.WorkingHours[domain.DayGroupWeekdays])
}
