// Package upstream is the HTTP client of the external route finder.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/provider/wire"
	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/logger"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/metrics"
)

// Upstream endpoint names.
const (
	EndpointRoutes    = "routes"
	EndpointPlanets   = "planets"
	EndpointCompanies = "companies"
)

// DefaultTimeout bounds a single upstream request.
const DefaultTimeout = 5 * time.Second

// maxBodyBytes limits how much of a response body is read.
const maxBodyBytes = 8 << 20

// Client fetches routes, planets and companies over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the client logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a client for the route finder at baseURL.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRoutes implements domain.RouteSource.
func (c *Client) FetchRoutes(ctx context.Context, query domain.RouteQuery) ([]domain.Itinerary, error) {
	params := url.Values{}
	params.Set("from", query.From)
	params.Set("to", query.To)

	body, err := c.get(ctx, EndpointRoutes, params)
	if err != nil {
		return nil, err
	}

	routes, err := wire.DecodeRoutes(body)
	if err != nil {
		return nil, domain.NewFetchError(EndpointRoutes, 0, err)
	}

	itineraries, skipped := wire.NormalizeRoutes(routes)
	if skipped > 0 {
		c.log.Warn().
			Int("skipped", skipped).
			Str("from", query.From).
			Str("to", query.To).
			Msg("Dropped malformed routes")
	}
	return itineraries, nil
}

// FetchPlanets implements domain.RouteSource.
func (c *Client) FetchPlanets(ctx context.Context) ([]string, error) {
	return c.fetchNames(ctx, EndpointPlanets)
}

// FetchCompanies implements domain.RouteSource.
func (c *Client) FetchCompanies(ctx context.Context) ([]string, error) {
	return c.fetchNames(ctx, EndpointCompanies)
}

func (c *Client) fetchNames(ctx context.Context, endpoint string) ([]string, error) {
	body, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	names, err := wire.DecodeNames(body)
	if err != nil {
		return nil, domain.NewFetchError(endpoint, 0, err)
	}
	return names, nil
}

// get performs one GET request and classifies failures as FetchErrors.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	target := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, domain.NewFetchError(endpoint, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		// Caller cancellation is final; transport failures may recover
		if ctx.Err() != nil {
			return nil, domain.NewFetchError(endpoint, 0, ctx.Err())
		}
		return nil, domain.NewRetryableFetchError(endpoint, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		return nil, domain.NewRetryableFetchError(endpoint, resp.StatusCode, err)
	}

	c.log.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Upstream request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeError).Inc()
		cause := errors.New(statusMessage(resp.StatusCode, body))
		if retryableStatus(resp.StatusCode) {
			return nil, domain.NewRetryableFetchError(endpoint, resp.StatusCode, cause)
		}
		return nil, domain.NewFetchError(endpoint, resp.StatusCode, cause)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, metrics.OutcomeSuccess).Inc()
	return body, nil
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func statusMessage(code int, body []byte) string {
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		return http.StatusText(code)
	}
	return fmt.Sprintf("%s: %s", http.StatusText(code), msg)
}
