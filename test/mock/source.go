// Package mock provides test doubles for the route offer service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, per-query responses).
package mock

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/test/testutil"
)

// Source is a configurable mock implementation of domain.RouteSource.
// Itineraries, errors and delays can be set per query so tests can hold one
// query back while a newer one completes.
type Source struct {
	mu sync.Mutex

	routes    map[domain.RouteQuery][]domain.Itinerary
	errs      map[domain.RouteQuery]error
	delays    map[domain.RouteQuery]time.Duration
	fallback  []domain.Itinerary
	err       error
	delay     time.Duration
	planets   []string
	companies []string
	calls     int
}

// NewSource creates an empty mock source.
func NewSource() *Source {
	return &Source{
		routes: make(map[domain.RouteQuery][]domain.Itinerary),
		errs:   make(map[domain.RouteQuery]error),
		delays: make(map[domain.RouteQuery]time.Duration),
	}
}

// WithItineraries configures the result for every query without its own entry.
func (s *Source) WithItineraries(itineraries []domain.Itinerary) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback = itineraries
	return s
}

// WithRoute configures the result for one query.
func (s *Source) WithRoute(from, to string, itineraries []domain.Itinerary) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[domain.RouteQuery{From: from, To: to}] = itineraries
	return s
}

// WithError makes every fetch fail with err.
func (s *Source) WithError(err error) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

// WithRouteError makes fetches for one query fail with err.
func (s *Source) WithRouteError(from, to string, err error) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[domain.RouteQuery{From: from, To: to}] = err
	return s
}

// WithDelay delays every fetch by d.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
	return s
}

// WithRouteDelay delays fetches for one query by d.
func (s *Source) WithRouteDelay(from, to string, d time.Duration) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[domain.RouteQuery{From: from, To: to}] = d
	return s
}

// WithPlanets configures the planet list.
func (s *Source) WithPlanets(planets ...string) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.planets = planets
	return s
}

// WithCompanies configures the company list.
func (s *Source) WithCompanies(companies ...string) *Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies = companies
	return s
}

// FetchRoutes implements domain.RouteSource.
// It respects context cancellation and applies the configured delay.
func (s *Source) FetchRoutes(ctx context.Context, query domain.RouteQuery) ([]domain.Itinerary, error) {
	s.mu.Lock()
	s.calls++
	delay := s.delay
	if d, ok := s.delays[query]; ok {
		delay = d
	}
	err := s.err
	if e, ok := s.errs[query]; ok {
		err = e
	}
	itineraries, ok := s.routes[query]
	if !ok {
		itineraries = s.fallback
	}
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

// FetchPlanets implements domain.RouteSource.
func (s *Source) FetchPlanets(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.planets, nil
}

// FetchCompanies implements domain.RouteSource.
func (s *Source) FetchCompanies(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.companies, nil
}

// CallCount returns how many times FetchRoutes was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Reset resets the call count to zero.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = 0
}

// Ensure Source implements domain.RouteSource at compile time.
var _ domain.RouteSource = (*Source)(nil)

// SampleItineraries returns three Earth to Jupiter itineraries with distinct
// price, duration and carrier so every sort field gives a different order.
//
//	0: direct, Space Voyager, 300, 10h, departs +0h
//	1: one stop via Mars, Galaxy Express, 2 x 50, 2 x 3h + 1h layover, departs +2h
//	2: direct, Spacelux, 200, 5h, departs +4h
func SampleItineraries() []domain.Itinerary {
	return []domain.Itinerary{
		testutil.DirectItinerary("a-1", "Earth", "Jupiter", "Space Voyager", "300", 0, 10*time.Hour),
		testutil.ChainItinerary("b", "Galaxy Express", "50", 2*time.Hour, 3*time.Hour, time.Hour, "Earth", "Mars", "Jupiter"),
		testutil.DirectItinerary("c-1", "Earth", "Jupiter", "Spacelux", "200", 4*time.Hour, 5*time.Hour),
	}
}

// DirectItineraries returns count direct itineraries from origin to
// destination, one hour apart, priced 100, 110, 120 and so on.
func DirectItineraries(origin, destination, carrier string, count int) []domain.Itinerary {
	out := make([]domain.Itinerary, count)
	for i := 0; i < count; i++ {
		out[i] = testutil.DirectItinerary(
			fmt.Sprintf("%s-%s-%d", origin, destination, i+1),
			origin, destination, carrier,
			strconv.Itoa(100+10*i),
			time.Duration(i)*time.Hour, 2*time.Hour,
		)
	}
	return out
}
