// Package resilient guards a RouteSource with per-endpoint rate limiting,
// circuit breaking and retries.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/logger"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/metrics"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/retry"
)

// Endpoint names used for limiters, breakers and metrics.
const (
	EndpointRoutes    = "routes"
	EndpointPlanets   = "planets"
	EndpointCompanies = "companies"
)

// Config holds the resilience settings shared by every endpoint.
type Config struct {
	// RequestsPerSecond is the sustained upstream request rate; zero disables limiting.
	RequestsPerSecond float64

	// Burst is the number of requests allowed above the sustained rate.
	Burst int

	// Retry controls retries of retryable fetch errors.
	Retry retry.Config

	// BreakerMaxFailures is the number of consecutive failures that opens the breaker.
	BreakerMaxFailures uint32

	// BreakerTimeout is how long the breaker stays open before probing.
	BreakerTimeout time.Duration

	// BreakerInterval resets failure counts while closed; zero never resets.
	BreakerInterval time.Duration
}

// DefaultConfig returns the default resilience settings.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond:  10,
		Burst:              20,
		Retry:              retry.DefaultConfig,
		BreakerMaxFailures: 5,
		BreakerTimeout:     30 * time.Second,
		BreakerInterval:    time.Minute,
	}
}

type guard struct {
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[any]
}

// Source decorates a RouteSource.
type Source struct {
	next   domain.RouteSource
	guards map[string]*guard
	retry  retry.Config
	log    *logger.Logger
}

// NewSource wraps next. If log is nil, logging is disabled.
func NewSource(next domain.RouteSource, cfg Config, log *logger.Logger) *Source {
	if log == nil {
		log = logger.Nop()
	}

	s := &Source{
		next:   next,
		guards: make(map[string]*guard, 3),
		log:    log,
	}

	s.retry = cfg.Retry.
		WithRetryIf(domain.IsRetryableFetch).
		WithOnRetry(func(attempt int, err error, wait time.Duration) {
			log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("Retrying upstream request")
		})

	for _, endpoint := range []string{EndpointRoutes, EndpointPlanets, EndpointCompanies} {
		s.guards[endpoint] = newGuard(endpoint, cfg, log)
	}
	return s
}

func newGuard(endpoint string, cfg Config, log *logger.Logger) *guard {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = DefaultConfig().BreakerMaxFailures
	}

	metrics.UpstreamBreakerState.WithLabelValues(endpoint).Set(0)

	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        endpoint,
		MaxRequests: 1,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Only upstream faults count against the breaker
		IsSuccessful: func(err error) bool {
			return err == nil || !domain.IsRetryableFetch(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("endpoint", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
			metrics.UpstreamBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &guard{
		limiter: rate.NewLimiter(limit, burst),
		breaker: breaker,
	}
}

// FetchRoutes implements domain.RouteSource.
func (s *Source) FetchRoutes(ctx context.Context, query domain.RouteQuery) ([]domain.Itinerary, error) {
	return call(ctx, s, EndpointRoutes, func() ([]domain.Itinerary, error) {
		return s.next.FetchRoutes(ctx, query)
	})
}

// FetchPlanets implements domain.RouteSource.
func (s *Source) FetchPlanets(ctx context.Context) ([]string, error) {
	return call(ctx, s, EndpointPlanets, func() ([]string, error) {
		return s.next.FetchPlanets(ctx)
	})
}

// FetchCompanies implements domain.RouteSource.
func (s *Source) FetchCompanies(ctx context.Context) ([]string, error) {
	return call(ctx, s, EndpointCompanies, func() ([]string, error) {
		return s.next.FetchCompanies(ctx)
	})
}

// call runs fn under the endpoint's limiter and breaker, retrying retryable failures.
func call[T any](ctx context.Context, s *Source, endpoint string, fn func() (T, error)) (T, error) {
	g := s.guards[endpoint]

	return retry.DoWithResult(ctx, func() (T, error) {
		var zero T

		if err := g.limiter.Wait(ctx); err != nil {
			return zero, domain.NewFetchError(endpoint, 0, fmt.Errorf("rate limit: %w", err))
		}

		result, err := g.breaker.Execute(func() (any, error) {
			return fn()
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "rejected").Inc()
				return zero, domain.NewFetchError(endpoint, 0, err)
			}
			return zero, err
		}

		typed, ok := result.(T)
		if !ok {
			return zero, domain.NewFetchError(endpoint, 0, fmt.Errorf("unexpected result type %T", result))
		}
		return typed, nil
	}, s.retry)
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
