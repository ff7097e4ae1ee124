package usecase

import (
	"strconv"
	"time"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/test/testutil"
)

// sequentialIDs makes offer IDs predictable.
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return "offer-" + strconv.Itoa(n)
	}
}

func newTestBuilder() *OfferBuilder {
	b := NewOfferBuilder(nil)
	b.newID = sequentialIDs()
	return b
}

// earthToSaturn returns four itineraries in upstream order:
//
//	0: SpaceX, 1 leg, 300, departs +2h, 5h
//	1: Explore Origin, 2 legs, 2x100, departs +0h, 3h+1h layover+3h
//	2: Galaxy Express, 1 leg, 300, departs +1h, 8h
//	3: SpaceX, 3 legs, 3x50, departs +3h, 1h+30m+1h+30m+1h
func earthToSaturn() []domain.Itinerary {
	return []domain.Itinerary{
		testutil.DirectItinerary("a1", "Earth", "Saturn", "SpaceX", "300", 2*time.Hour, 5*time.Hour),
		testutil.ChainItinerary("b", "Explore Origin", "100", 0, 3*time.Hour, time.Hour, "Earth", "Jupiter", "Saturn"),
		testutil.DirectItinerary("c1", "Earth", "Saturn", "Galaxy Express", "300", time.Hour, 8*time.Hour),
		testutil.ChainItinerary("d", "SpaceX", "50", 3*time.Hour, time.Hour, 30*time.Minute, "Earth", "Mars", "Jupiter", "Saturn"),
	}
}

func sourceIndexes(offers []domain.Offer) []int {
	idx := make([]int, len(offers))
	for i, o := range offers {
		idx[i] = o.SourceIndex
	}
	return idx
}

func visibleIndexes(offers []domain.Offer) []int {
	idx := []int{}
	for _, o := range offers {
		if o.Visible {
			idx = append(idx, o.SourceIndex)
		}
	}
	return idx
}
