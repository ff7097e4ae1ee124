package usecase

import (
	"fmt"
	"slices"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

// SelectBooking pairs the offer at view position index with the raw
// itinerary it was built from. The itinerary is found through the offer's
// SourceIndex, which differs from index once the view has been sorted.
func SelectBooking(index int, offers []domain.Offer, itineraries []domain.Itinerary) (domain.Booking, error) {
	if index < 0 || index >= len(offers) {
		return domain.Booking{}, fmt.Errorf("%w: %d not in [0, %d)", domain.ErrIndexOutOfRange, index, len(offers))
	}

	overview := offers[index]
	if overview.SourceIndex < 0 || overview.SourceIndex >= len(itineraries) {
		return domain.Booking{}, fmt.Errorf("%w: source index %d not in [0, %d)",
			domain.ErrIndexOutOfRange, overview.SourceIndex, len(itineraries))
	}
	overview.LegIDs = slices.Clone(overview.LegIDs)

	return domain.Booking{
		Overview: overview,
		Legs:     slices.Clone(itineraries[overview.SourceIndex]),
	}, nil
}
