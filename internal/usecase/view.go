package usecase

import (
	"fmt"
	"slices"
	"sort"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

// ViewState is the mutable offer view of one client session.
//
// It keeps the raw itineraries untouched and indexes into them through each
// offer's SourceIndex, so sorting and filtering the offers never breaks the
// link to raw data. ViewState is not safe for concurrent use; the session
// service serialises access to it.
type ViewState struct {
	builder *OfferBuilder

	query       domain.RouteQuery
	itineraries []domain.Itinerary
	offers      []domain.Offer
	sort        domain.SortSpec
	carrier     string

	// issued is the sequence number of the latest query started on this view.
	issued uint64
}

// NewViewState creates an empty view that builds offers with builder.
func NewViewState(builder *OfferBuilder) *ViewState {
	if builder == nil {
		builder = NewOfferBuilder(nil)
	}
	return &ViewState{
		builder: builder,
		sort:    domain.DefaultSortSpec(),
		carrier: domain.CarrierAll,
	}
}

// OnNewData replaces the view with offers built from itineraries, ordered by
// the default sort regardless of the sort active before. The carrier filter
// and expanded rows are reset. On error the previous state is kept.
func (v *ViewState) OnNewData(itineraries []domain.Itinerary, origin, destination string) error {
	offers, err := v.builder.Build(itineraries, origin, destination)
	if err != nil {
		return err
	}

	v.query = domain.RouteQuery{From: origin, To: destination}
	v.itineraries = slices.Clone(itineraries)
	v.sort = domain.DefaultSortSpec()
	v.offers = SortOffers(offers, v.sort)
	v.carrier = domain.CarrierAll
	return nil
}

// BeginQuery registers a new fetch and returns its sequence number.
// Any result started earlier becomes stale.
func (v *ViewState) BeginQuery() uint64 {
	v.issued++
	return v.issued
}

// ApplyResult loads the result of the fetch numbered seq. Results of
// superseded fetches are discarded with ErrStaleResult and leave the view as is.
func (v *ViewState) ApplyResult(seq uint64, query domain.RouteQuery, itineraries []domain.Itinerary) error {
	if seq != v.issued {
		return fmt.Errorf("%w: result %d superseded by %d", domain.ErrStaleResult, seq, v.issued)
	}
	return v.OnNewData(itineraries, query.From, query.To)
}

// SortBy applies the sort toggle for field and reorders the offers.
func (v *ViewState) SortBy(field domain.SortField) error {
	next, err := NextSortSpec(v.sort, field)
	if err != nil {
		return err
	}
	v.offers = SortOffers(v.offers, next)
	v.sort = next
	return nil
}

// FilterByCarrier shows only offers of carrier, or all offers for CarrierAll.
// An empty carrier is treated as CarrierAll.
func (v *ViewState) FilterByCarrier(carrier string) {
	if carrier == "" {
		carrier = domain.CarrierAll
	}
	FilterByCarrier(v.offers, carrier)
	v.carrier = carrier
}

// ToggleExpanded flips the expanded flag of the offer at view position index.
func (v *ViewState) ToggleExpanded(index int) error {
	if err := v.checkIndex(index); err != nil {
		return err
	}
	v.offers[index].Expanded = !v.offers[index].Expanded
	return nil
}

// Detail returns the offer at view position index with its raw legs.
func (v *ViewState) Detail(index int) (domain.OfferDetail, error) {
	booking, err := SelectBooking(index, v.offers, v.itineraries)
	if err != nil {
		return domain.OfferDetail{}, err
	}
	return domain.OfferDetail{
		Offer: booking.Overview,
		Legs:  v.builder.LegDetails(booking.Legs),
	}, nil
}

// Confirm selects the booking for the offer at view position index.
func (v *ViewState) Confirm(index int) (domain.Booking, error) {
	return SelectBooking(index, v.offers, v.itineraries)
}

// Sort returns the active sort.
func (v *ViewState) Sort() domain.SortSpec {
	return v.sort
}

// Offers returns a copy of the current offers in view order.
func (v *ViewState) Offers() []domain.Offer {
	return slices.Clone(v.offers)
}

// Itineraries returns the raw itineraries in source order.
func (v *ViewState) Itineraries() []domain.Itinerary {
	return slices.Clone(v.itineraries)
}

// Snapshot returns a read-only copy of the view.
func (v *ViewState) Snapshot() domain.View {
	offers := v.Offers()
	if offers == nil {
		offers = []domain.Offer{}
	}
	return domain.View{
		Query:    v.query,
		Sort:     v.sort,
		Carrier:  v.carrier,
		Carriers: carriersOf(v.offers),
		Offers:   offers,
	}
}

func (v *ViewState) checkIndex(index int) error {
	if index < 0 || index >= len(v.offers) {
		return fmt.Errorf("%w: %d not in [0, %d)", domain.ErrIndexOutOfRange, index, len(v.offers))
	}
	return nil
}

// carriersOf returns the distinct carriers of offers in alphabetical order.
func carriersOf(offers []domain.Offer) []string {
	seen := make(map[string]struct{}, len(offers))
	carriers := make([]string, 0, len(offers))
	for _, o := range offers {
		if _, ok := seen[o.Carrier]; ok {
			continue
		}
		seen[o.Carrier] = struct{}{}
		carriers = append(carriers, o.Carrier)
	}
	sort.Strings(carriers)
	return carriers
}
