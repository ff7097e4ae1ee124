// Package domain contains the core entities of the route offer service.
// Raw routes come from the upstream route finder as itineraries of legs;
// everything the service shows a client is derived from them.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PricePrecision is the number of decimal places prices are kept at (thousandths).
const PricePrecision = 3

// Leg is one priced flight segment operated by a single carrier.
type Leg struct {
	// ID is the upstream identifier, unique within one query result
	ID string `json:"id"`

	// From is the departure location
	From string `json:"from"`

	// To is the arrival location
	To string `json:"to"`

	// FlightStart is the departure instant
	FlightStart time.Time `json:"flightStart"`

	// FlightEnd is the arrival instant, always after FlightStart
	FlightEnd time.Time `json:"flightEnd"`

	// Carrier is the name of the operating company
	Carrier string `json:"carrier"`

	// Price is the leg price in the single service currency
	Price decimal.Decimal `json:"price"`
}

// DurationMinutes returns the flight time of the leg in minutes.
func (l Leg) DurationMinutes() float64 {
	return l.FlightEnd.Sub(l.FlightStart).Minutes()
}

// Itinerary is an ordered chain of legs from an overall origin to a destination.
type Itinerary []Leg

// First returns the first leg. The itinerary must not be empty.
func (it Itinerary) First() Leg {
	return it[0]
}

// Last returns the last leg. The itinerary must not be empty.
func (it Itinerary) Last() Leg {
	return it[len(it)-1]
}

// LegIDs returns the leg identifiers in travel order.
func (it Itinerary) LegIDs() []string {
	ids := make([]string, len(it))
	for i, leg := range it {
		ids[i] = leg.ID
	}
	return ids
}

// RouteQuery is the origin/destination pair a client searches for.
type RouteQuery struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Normalize trims surrounding whitespace from both ends of the query.
func (q RouteQuery) Normalize() RouteQuery {
	return RouteQuery{
		From: strings.TrimSpace(q.From),
		To:   strings.TrimSpace(q.To),
	}
}

// Validate checks that both locations are present after trimming.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (q RouteQuery) Validate() error {
	if strings.TrimSpace(q.From) == "" {
		return fmt.Errorf("%w: from is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(q.To) == "" {
		return fmt.Errorf("%w: to is required", ErrInvalidRequest)
	}
	return nil
}
