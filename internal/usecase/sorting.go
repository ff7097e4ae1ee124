package usecase

import (
	"sort"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

// offerLess reports whether a orders before b for a field in ascending order.
type offerLess func(a, b domain.Offer) bool

var offerComparators = map[domain.SortField]offerLess{
	domain.SortByPrice: func(a, b domain.Offer) bool {
		return a.TotalPrice.LessThan(b.TotalPrice)
	},
	domain.SortByDuration: func(a, b domain.Offer) bool {
		return a.DurationMinutes < b.DurationMinutes
	},
	domain.SortByDeparture: func(a, b domain.Offer) bool {
		return a.Departure.Before(b.Departure)
	},
	domain.SortByArrival: func(a, b domain.Offer) bool {
		return a.Arrival.Before(b.Arrival)
	},
	domain.SortByStops: func(a, b domain.Offer) bool {
		return a.StopCount < b.StopCount
	},
}

// SortOffers returns a copy of offers ordered by spec.
// Uses stable sorting so equal keys keep their relative input order in both
// directions. An unknown field returns the copy unsorted.
// Does NOT mutate the original offers slice.
func SortOffers(offers []domain.Offer, spec domain.SortSpec) []domain.Offer {
	result := make([]domain.Offer, len(offers))
	copy(result, offers)

	less, ok := offerComparators[spec.Field]
	if !ok || len(result) < 2 {
		return result
	}

	if spec.Direction == domain.Descending {
		sort.SliceStable(result, func(i, j int) bool {
			return less(result[j], result[i])
		})
	} else {
		sort.SliceStable(result, func(i, j int) bool {
			return less(result[i], result[j])
		})
	}

	return result
}

// NextSortSpec applies the sort toggle: requesting the active field flips its
// direction, requesting any other field activates it descending.
func NextSortSpec(current domain.SortSpec, field domain.SortField) (domain.SortSpec, error) {
	if !field.IsValid() {
		return current, domain.WrapInvalidRequest("unknown sort field %q", field)
	}
	if current.Field == field {
		return domain.SortSpec{Field: field, Direction: current.Direction.Flip()}, nil
	}
	return domain.SortSpec{Field: field, Direction: domain.Descending}, nil
}
