package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is the aggregate, client-facing summary of one itinerary.
// It reaches its raw legs only through SourceIndex, never through its
// position in a sorted slice.
type Offer struct {
	// SourceIndex is the index of the itinerary this offer was built from
	SourceIndex int `json:"sourceIndex"`

	// ID is a freshly generated identifier used for client-side identity only
	ID string `json:"id"`

	// LegIDs are the constituent leg identifiers in travel order
	LegIDs []string `json:"legIds"`

	// Carrier is the carrier of the first leg
	Carrier string `json:"carrier"`

	// Origin and Destination are the locations the client asked for
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// TotalPrice is the exact sum of the leg prices
	TotalPrice decimal.Decimal `json:"totalPrice"`

	// StopCount is the number of legs minus one
	StopCount int    `json:"stopCount"`
	StopLabel string `json:"stopLabel"`

	// Departure is the start of the first leg, Arrival the end of the last
	Departure      time.Time `json:"departure"`
	Arrival        time.Time `json:"arrival"`
	TimeRangeLabel string    `json:"timeRangeLabel"`

	// DurationMinutes is the door-to-door travel time
	DurationMinutes float64 `json:"durationMinutes"`
	DurationLabel   string  `json:"durationLabel"`

	// Expanded marks the row as opened by the client
	Expanded bool `json:"expanded"`

	// Visible is false when the active carrier filter hides the offer
	Visible bool `json:"visible"`
}

// SortField names the numeric offer field a sort operates on.
type SortField string

// Available sort fields.
const (
	SortByPrice     SortField = "price"
	SortByDuration  SortField = "duration"
	SortByDeparture SortField = "departure"
	SortByArrival   SortField = "arrival"
	SortByStops     SortField = "stops"
)

// IsValid checks if the sort field is a known value.
func (f SortField) IsValid() bool {
	switch f {
	case SortByPrice, SortByDuration, SortByDeparture, SortByArrival, SortByStops:
		return true
	default:
		return false
	}
}

// SortDirection is the order applied to a sort field.
type SortDirection string

// Sort directions.
const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// SortSpec is the active field and direction governing offer order.
type SortSpec struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortSpec is applied whenever fresh raw data is loaded.
func DefaultSortSpec() SortSpec {
	return SortSpec{Field: SortByDeparture, Direction: Ascending}
}

// CarrierAll is the carrier filter value that shows every offer.
const CarrierAll = "all"

// LegDetail is one raw leg as shown in an expanded offer row.
type LegDetail struct {
	Leg

	// StartLabel and EndLabel are the localized departure/arrival labels
	StartLabel string `json:"startLabel"`
	EndLabel   string `json:"endLabel"`

	// DurationLabel is the flight time of this leg
	DurationLabel string `json:"durationLabel"`

	// LayoverLabel is the wait before the next leg; empty on the last leg
	LayoverLabel string `json:"layoverLabel,omitempty"`
}

// OfferDetail is an offer together with the raw legs it was built from.
type OfferDetail struct {
	Offer Offer       `json:"offer"`
	Legs  []LegDetail `json:"legs"`
}

// View is a read-only snapshot of a client session.
type View struct {
	SessionID string     `json:"sessionId"`
	Query     RouteQuery `json:"query"`
	Sort      SortSpec   `json:"sort"`
	Carrier   string     `json:"carrier"`
	Carriers  []string   `json:"carriers"`
	Offers    []Offer    `json:"offers"`
}
