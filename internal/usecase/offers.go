// Package usecase contains the route offer engine and the session service
// that drives it. Offers are built from raw itineraries, sorted and filtered
// per client session, and confirmed into bookings.
package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/timeutil"
)

// OfferBuilder turns raw itineraries into offers.
type OfferBuilder struct {
	formatter *timeutil.ClockFormatter
	newID     func() string
}

// NewOfferBuilder creates a builder that renders labels with the given formatter.
// If formatter is nil, an en_US/UTC formatter is used.
func NewOfferBuilder(formatter *timeutil.ClockFormatter) *OfferBuilder {
	if formatter == nil {
		formatter = timeutil.DefaultClockFormatter()
	}
	return &OfferBuilder{
		formatter: formatter,
		newID:     uuid.NewString,
	}
}

// Build creates one offer per itinerary, in input order, so that offer i has
// SourceIndex i. Origin and destination are the locations the client asked for.
//
// Behavior:
//   - Returns an empty slice for empty input
//   - Fails with ErrEmptyItinerary if any itinerary has no legs
//   - Does NOT mutate the itineraries
func (b *OfferBuilder) Build(itineraries []domain.Itinerary, origin, destination string) ([]domain.Offer, error) {
	offers := make([]domain.Offer, 0, len(itineraries))
	for i, it := range itineraries {
		if len(it) == 0 {
			return nil, fmt.Errorf("%w: itinerary %d has no legs", domain.ErrEmptyItinerary, i)
		}
		offers = append(offers, b.buildOffer(i, it, origin, destination))
	}
	return offers, nil
}

func (b *OfferBuilder) buildOffer(index int, it domain.Itinerary, origin, destination string) domain.Offer {
	departure := it.First().FlightStart
	arrival := it.Last().FlightEnd

	duration := arrival.Sub(departure).Minutes()
	if duration < 0 {
		duration = 0
	}
	stops := len(it) - 1

	return domain.Offer{
		SourceIndex:     index,
		ID:              b.newID(),
		LegIDs:          it.LegIDs(),
		Carrier:         it.First().Carrier,
		Origin:          origin,
		Destination:     destination,
		TotalPrice:      totalPrice(it),
		StopCount:       stops,
		StopLabel:       domain.FormatStops(stops),
		Departure:       departure,
		Arrival:         arrival,
		TimeRangeLabel:  b.formatter.FormatTimeRange(departure, arrival),
		DurationMinutes: duration,
		DurationLabel:   domain.FormatDuration(duration),
		Visible:         true,
	}
}

// totalPrice sums leg prices exactly and rounds to thousandths.
func totalPrice(it domain.Itinerary) decimal.Decimal {
	sum := decimal.Zero
	for _, leg := range it {
		sum = sum.Add(leg.Price)
	}
	return sum.Round(domain.PricePrecision)
}

// LegDetails renders the legs of an itinerary for an expanded offer row.
func (b *OfferBuilder) LegDetails(it domain.Itinerary) []domain.LegDetail {
	details := make([]domain.LegDetail, len(it))
	for i, leg := range it {
		details[i] = domain.LegDetail{
			Leg:           leg,
			StartLabel:    b.formatter.FormatClock(leg.FlightStart),
			EndLabel:      b.formatter.FormatClock(leg.FlightEnd),
			DurationLabel: domain.FormatGap(leg.FlightStart, leg.FlightEnd),
		}
		if i < len(it)-1 {
			details[i].LayoverLabel = domain.FormatGap(leg.FlightEnd, it[i+1].FlightStart)
		}
	}
	return details
}
