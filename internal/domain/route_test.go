package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRouteQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   RouteQuery
		wantErr bool
	}{
		{name: "valid", query: RouteQuery{From: "Earth", To: "Jupiter"}},
		{name: "surrounding whitespace is fine", query: RouteQuery{From: " Earth ", To: "Venus\t"}},
		{name: "empty from", query: RouteQuery{From: "", To: "Jupiter"}, wantErr: true},
		{name: "empty to", query: RouteQuery{From: "Earth", To: ""}, wantErr: true},
		{name: "whitespace only from", query: RouteQuery{From: "   ", To: "Jupiter"}, wantErr: true},
		{name: "whitespace only to", query: RouteQuery{From: "Earth", To: "\n\t"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRouteQuery_Normalize(t *testing.T) {
	q := RouteQuery{From: "  Earth", To: "Mars  "}.Normalize()
	assert.Equal(t, RouteQuery{From: "Earth", To: "Mars"}, q)
}

func TestItinerary_Accessors(t *testing.T) {
	start := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	it := Itinerary{
		{ID: "a", From: "Earth", To: "Mars", FlightStart: start, FlightEnd: start.Add(3 * time.Hour), Price: decimal.NewFromInt(10)},
		{ID: "b", From: "Mars", To: "Jupiter", FlightStart: start.Add(5 * time.Hour), FlightEnd: start.Add(9 * time.Hour), Price: decimal.NewFromInt(20)},
	}

	assert.Equal(t, "a", it.First().ID)
	assert.Equal(t, "b", it.Last().ID)
	assert.Equal(t, []string{"a", "b"}, it.LegIDs())
	assert.Equal(t, 180.0, it.First().DurationMinutes())
}
