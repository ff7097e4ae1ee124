package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

func TestFilterByCarrier(t *testing.T) {
	tests := []struct {
		name    string
		carrier string
		want    []int
	}{
		{name: "all", carrier: domain.CarrierAll, want: []int{0, 1, 2, 3}},
		{name: "single carrier", carrier: "SpaceX", want: []int{0, 3}},
		{name: "other carrier", carrier: "Galaxy Express", want: []int{2}},
		{name: "unknown carrier hides everything", carrier: "Nobody", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offers := builtOffers(t)
			FilterByCarrier(offers, tt.carrier)
			assert.Equal(t, tt.want, visibleIndexes(offers))
		})
	}
}

func TestFilterByCarrier_NotCumulative(t *testing.T) {
	offers := builtOffers(t)

	FilterByCarrier(offers, "SpaceX")
	FilterByCarrier(offers, "Explore Origin")
	assert.Equal(t, []int{1}, visibleIndexes(offers))

	FilterByCarrier(offers, domain.CarrierAll)
	assert.Equal(t, []int{0, 1, 2, 3}, visibleIndexes(offers))
}

func TestFilterByCarrier_KeepsOrderAndFields(t *testing.T) {
	offers := builtOffers(t)
	offers[2].Expanded = true

	FilterByCarrier(offers, "SpaceX")

	assert.Equal(t, []int{0, 1, 2, 3}, sourceIndexes(offers))
	assert.True(t, offers[2].Expanded)
}
