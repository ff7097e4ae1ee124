package http

import (
	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

// ToViewResponse converts a session view to its API representation.
func ToViewResponse(v domain.View) *ViewResponse {
	offers := make([]OfferResponse, len(v.Offers))
	visible := 0
	for i, o := range v.Offers {
		offers[i] = toOfferResponse(i, o)
		if o.Visible {
			visible++
		}
	}

	carriers := v.Carriers
	if carriers == nil {
		carriers = []string{}
	}

	return &ViewResponse{
		SessionID: v.SessionID,
		Query:     toQueryResponse(v.Query),
		Sort: SortResponse{
			Field:     string(v.Sort.Field),
			Direction: string(v.Sort.Direction),
		},
		Carrier:      v.Carrier,
		Carriers:     carriers,
		Offers:       offers,
		VisibleCount: visible,
	}
}

// ToOfferDetailResponse converts an expanded offer; index is its view position.
func ToOfferDetailResponse(index int, d domain.OfferDetail) *OfferDetailResponse {
	legs := make([]LegResponse, len(d.Legs))
	for i, ld := range d.Legs {
		legs[i] = toLegResponse(ld.Leg)
		legs[i].StartLabel = ld.StartLabel
		legs[i].EndLabel = ld.EndLabel
		legs[i].Duration = ld.DurationLabel
		legs[i].Layover = ld.LayoverLabel
	}
	return &OfferDetailResponse{
		Offer: toOfferResponse(index, d.Offer),
		Legs:  legs,
	}
}

// ToBookingResponse converts a booking. A booking lives outside any view, so
// the overview Index is zero.
func ToBookingResponse(b domain.Booking) *BookingResponse {
	return &BookingResponse{
		Reference:   b.Reference,
		ConfirmedAt: b.ConfirmedAt,
		Overview:    toOfferResponse(0, b.Overview),
		Legs:        toLegResponses(b.Legs),
	}
}

// ToRoutesResponse converts raw itineraries of a query.
func ToRoutesResponse(q domain.RouteQuery, itineraries []domain.Itinerary) *RoutesResponse {
	out := make([][]LegResponse, len(itineraries))
	for i, it := range itineraries {
		out[i] = toLegResponses(it)
	}
	return &RoutesResponse{
		Query:       toQueryResponse(q),
		Itineraries: out,
		Total:       len(out),
	}
}

// ToNamesResponse wraps a name list.
func ToNamesResponse(names []string) *NamesResponse {
	if names == nil {
		names = []string{}
	}
	return &NamesResponse{Items: names, Total: len(names)}
}

func toQueryResponse(q domain.RouteQuery) QueryResponse {
	return QueryResponse{From: q.From, To: q.To}
}

func toOfferResponse(index int, o domain.Offer) OfferResponse {
	return OfferResponse{
		Index:           index,
		SourceIndex:     o.SourceIndex,
		ID:              o.ID,
		LegIDs:          o.LegIDs,
		Carrier:         o.Carrier,
		Origin:          o.Origin,
		Destination:     o.Destination,
		TotalPrice:      o.TotalPrice.StringFixed(domain.PricePrecision),
		StopCount:       o.StopCount,
		StopLabel:       o.StopLabel,
		Departure:       o.Departure,
		Arrival:         o.Arrival,
		TimeRange:       o.TimeRangeLabel,
		DurationMinutes: o.DurationMinutes,
		Duration:        o.DurationLabel,
		Expanded:        o.Expanded,
		Visible:         o.Visible,
	}
}

func toLegResponses(it domain.Itinerary) []LegResponse {
	legs := make([]LegResponse, len(it))
	for i, leg := range it {
		legs[i] = toLegResponse(leg)
	}
	return legs
}

func toLegResponse(leg domain.Leg) LegResponse {
	return LegResponse{
		ID:          leg.ID,
		From:        leg.From,
		To:          leg.To,
		FlightStart: leg.FlightStart,
		FlightEnd:   leg.FlightEnd,
		Carrier:     leg.Carrier,
		Price:       leg.Price.StringFixed(domain.PricePrecision),
	}
}
