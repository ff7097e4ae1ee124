// Package wire decodes the route finder JSON format shared by the upstream
// HTTP API and local fixture files.
package wire

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

// Company is the operating company of a leg.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Leg is one leg as sent by the route finder.
type Leg struct {
	ID          string          `json:"id"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	FlightStart string          `json:"flightStart"`
	FlightEnd   string          `json:"flightEnd"`
	Company     Company         `json:"company"`
	Price       decimal.Decimal `json:"price"`
}

// Route is an itinerary on the wire: legs in travel order.
type Route []Leg

// NormalizeRoutes converts wire routes to itineraries in the same order.
// Routes containing a malformed leg are dropped; the returned count says how
// many. Routes with no legs are passed through untouched.
func NormalizeRoutes(routes []Route) ([]domain.Itinerary, int) {
	result := make([]domain.Itinerary, 0, len(routes))
	skipped := 0

	for _, r := range routes {
		it, err := NormalizeRoute(r)
		if err != nil {
			skipped++
			continue
		}
		result = append(result, it)
	}

	return result, skipped
}

// NormalizeRoute converts one wire route.
func NormalizeRoute(r Route) (domain.Itinerary, error) {
	it := make(domain.Itinerary, 0, len(r))
	for i, l := range r {
		leg, err := NormalizeLeg(l)
		if err != nil {
			return nil, fmt.Errorf("leg %d: %w", i, err)
		}
		it = append(it, leg)
	}
	return it, nil
}

// NormalizeLeg converts one wire leg. The company name becomes the carrier.
func NormalizeLeg(l Leg) (domain.Leg, error) {
	start, err := ParseDateTime(l.FlightStart)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("failed to parse flight start: %w", err)
	}

	end, err := ParseDateTime(l.FlightEnd)
	if err != nil {
		return domain.Leg{}, fmt.Errorf("failed to parse flight end: %w", err)
	}

	if !end.After(start) {
		return domain.Leg{}, fmt.Errorf("leg %s ends before it starts", l.ID)
	}

	carrier := strings.TrimSpace(l.Company.Name)
	if carrier == "" {
		return domain.Leg{}, fmt.Errorf("leg %s has no company", l.ID)
	}

	if l.Price.IsNegative() {
		return domain.Leg{}, fmt.Errorf("leg %s has negative price", l.ID)
	}

	return domain.Leg{
		ID:          l.ID,
		From:        l.From,
		To:          l.To,
		FlightStart: start,
		FlightEnd:   end,
		Carrier:     carrier,
		Price:       l.Price,
	}, nil
}

// ParseDateTime parses an ISO 8601 datetime string to time.Time.
// Supports formats: "2006-01-02T15:04:05.000Z07:00" and "2006-01-02T15:04:05"
func ParseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}

	// No zone means UTC
	t, err = time.Parse("2006-01-02T15:04:05", value)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}

// DecodeRoutes decodes a JSON array of routes.
func DecodeRoutes(data []byte) ([]Route, error) {
	var routes []Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode routes: %w", err)
	}
	return routes, nil
}

// DecodeNames decodes a JSON array whose items are either plain strings or
// objects with a "name" field, as planets and companies are listed.
func DecodeNames(data []byte) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode names: %w", err)
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			names = append(names, name)
			continue
		}

		var named struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(item, &named); err != nil {
			return nil, fmt.Errorf("failed to decode name %s: %w", item, err)
		}
		names = append(names, named.Name)
	}
	return names, nil
}
