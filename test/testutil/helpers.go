// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

// BaseTime is the reference instant the leg builders count from.
var BaseTime = time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)

// LoadMockJSON loads a JSON file from the docs/response-mock directory.
func LoadMockJSON(t *testing.T, filename string) []byte {
	t.Helper()
	data, err := os.ReadFile(MockPath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load mock file %s: %v", filename, err)
	}
	return data
}

// MockPath returns the absolute path of a file in docs/response-mock.
func MockPath(t *testing.T, filename string) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil lives in test/testutil
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	return filepath.Join(projectRoot, "docs", "response-mock", filename)
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// Price parses a decimal literal and panics on malformed input.
func Price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// NewLeg builds a leg departing offset after BaseTime and flying for the
// given duration.
func NewLeg(id, from, to, carrier, price string, offset, duration time.Duration) domain.Leg {
	start := BaseTime.Add(offset)
	return domain.Leg{
		ID:          id,
		From:        from,
		To:          to,
		FlightStart: start,
		FlightEnd:   start.Add(duration),
		Carrier:     carrier,
		Price:       Price(price),
	}
}

// DirectItinerary builds a one-leg itinerary.
func DirectItinerary(id, from, to, carrier, price string, offset, duration time.Duration) domain.Itinerary {
	return domain.Itinerary{NewLeg(id, from, to, carrier, price, offset, duration)}
}

// ChainItinerary builds an itinerary through stops, every leg flown by carrier
// for legDuration with layover between legs. Each leg costs legPrice.
func ChainItinerary(prefix, carrier, legPrice string, offset, legDuration, layover time.Duration, stops ...string) domain.Itinerary {
	it := make(domain.Itinerary, 0, len(stops)-1)
	at := offset
	for i := 0; i < len(stops)-1; i++ {
		it = append(it, NewLeg(
			fmt.Sprintf("%s-%d", prefix, i+1),
			stops[i], stops[i+1], carrier, legPrice, at, legDuration,
		))
		at += legDuration + layover
	}
	return it
}

// Ptr returns a pointer to the given value.
func Ptr[T any](v T) *T {
	return &v
}
