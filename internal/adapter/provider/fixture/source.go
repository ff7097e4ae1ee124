// Package fixture serves route finder data from a local JSON file.
package fixture

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/provider/wire"
	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/logger"
)

// Endpoint names reported in fetch errors.
const (
	endpointRoutes    = "routes"
	endpointPlanets   = "planets"
	endpointCompanies = "companies"
)

// Document is the fixture file layout.
type Document struct {
	Planets   json.RawMessage `json:"planets"`
	Companies json.RawMessage `json:"companies"`
	Routes    []RouteSet      `json:"routes"`
}

// RouteSet holds the itineraries returned for one origin/destination pair.
type RouteSet struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	Itineraries []wire.Route `json:"itineraries"`
}

// Source implements domain.RouteSource over a fixture file.
// The file is read on every call so edits show up without a restart.
type Source struct {
	path    string
	latency time.Duration
	log     *logger.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithLatency delays every response, simulating a slow route finder.
func WithLatency(d time.Duration) Option {
	return func(s *Source) {
		s.latency = d
	}
}

// WithLogger sets the source logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Source) {
		s.log = l
	}
}

// NewSource creates a fixture source reading path.
func NewSource(path string, opts ...Option) *Source {
	s := &Source{path: path, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchRoutes returns the itineraries stored for the query's locations.
// Location names match case-insensitively; an unknown pair yields no routes.
func (s *Source) FetchRoutes(ctx context.Context, query domain.RouteQuery) ([]domain.Itinerary, error) {
	doc, err := s.load(ctx, endpointRoutes)
	if err != nil {
		return nil, err
	}

	for _, set := range doc.Routes {
		if !strings.EqualFold(set.From, query.From) || !strings.EqualFold(set.To, query.To) {
			continue
		}
		itineraries, skipped := wire.NormalizeRoutes(set.Itineraries)
		if skipped > 0 {
			s.log.Warn().Int("skipped", skipped).Str("path", s.path).Msg("Dropped malformed fixture routes")
		}
		return itineraries, nil
	}

	return []domain.Itinerary{}, nil
}

// FetchPlanets implements domain.RouteSource.
func (s *Source) FetchPlanets(ctx context.Context) ([]string, error) {
	doc, err := s.load(ctx, endpointPlanets)
	if err != nil {
		return nil, err
	}
	return decodeNames(endpointPlanets, doc.Planets)
}

// FetchCompanies implements domain.RouteSource.
func (s *Source) FetchCompanies(ctx context.Context) ([]string, error) {
	doc, err := s.load(ctx, endpointCompanies)
	if err != nil {
		return nil, err
	}
	return decodeNames(endpointCompanies, doc.Companies)
}

func (s *Source) load(ctx context.Context, endpoint string) (*Document, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, domain.NewFetchError(endpoint, 0, ctx.Err())
		case <-timer.C:
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, domain.NewFetchError(endpoint, 0, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, domain.NewRetryableFetchError(endpoint, 0, fmt.Errorf("failed to read fixture: %w", err))
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewFetchError(endpoint, 0, fmt.Errorf("failed to parse fixture: %w", err))
	}
	return &doc, nil
}

func decodeNames(endpoint string, raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	names, err := wire.DecodeNames(raw)
	if err != nil {
		return nil, domain.NewFetchError(endpoint, 0, err)
	}
	return names, nil
}
