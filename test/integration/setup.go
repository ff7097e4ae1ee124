// Package integration provides helpers and integration tests for the route offer service.
// Integration tests verify that components work together correctly, including
// HTTP handlers, the session service, the booking store and the booking feed.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/cosmos-odyssey/route-offer-service/internal/adapter/http"
	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/events"
	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/store"
	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/idgen"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/logger"
	"github.com/cosmos-odyssey/route-offer-service/internal/usecase"
)

// Stack is a fully wired service: session service, booking store and feed.
type Stack struct {
	Sessions usecase.SessionService
	Store    store.Store
	Bookings *store.BookingRepository
	Feed     *events.BookingFeed
}

// NewStack wires a session service around source with an in-memory store.
// Resources are released when the test ends.
func NewStack(t *testing.T, source domain.RouteSource, config *usecase.SessionConfig) *Stack {
	t.Helper()
	return NewStackWithStore(t, source, store.Config{Backend: store.BackendMemory}, config)
}

// NewStackWithStore is NewStack with an explicit store configuration.
func NewStackWithStore(t *testing.T, source domain.RouteSource, storeCfg store.Config, config *usecase.SessionConfig) *Stack {
	t.Helper()

	kv, err := store.New(context.Background(), storeCfg)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}

	feed := events.NewBookingFeed(logger.Nop())
	bookings := store.NewBookingRepository(kv)

	if config == nil {
		config = &usecase.SessionConfig{}
	}
	if config.References == nil {
		refs, err := idgen.NewSnowflakeGenerator(1)
		if err != nil {
			t.Fatalf("Failed to create reference generator: %v", err)
		}
		config.References = refs
	}
	if config.Logger == nil {
		config.Logger = logger.Nop()
	}

	sessions, err := usecase.NewSessionService(source, bookings, feed, config)
	if err != nil {
		t.Fatalf("Failed to create session service: %v", err)
	}

	t.Cleanup(func() {
		_ = feed.Close()
		_ = kv.Close()
	})

	return &Stack{
		Sessions: sessions,
		Store:    kv,
		Bookings: bookings,
		Feed:     feed,
	}
}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	*Stack
	Echo    *echo.Echo
	Handler *httpAdapter.Handler
}

// NewTestServer creates a new test server over a fresh stack.
func NewTestServer(t *testing.T, source domain.RouteSource, config *usecase.SessionConfig) *TestServer {
	t.Helper()

	stack := NewStack(t, source, config)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewHandler(stack.Sessions, stack.Feed, httpAdapter.HandlerConfig{
		Logger: logger.Nop(),
	})
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Stack:   stack,
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/health"})
}

// CreateSession opens a session and returns its ID, failing the test otherwise.
func (ts *TestServer) CreateSession(t *testing.T) string {
	t.Helper()
	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/sessions"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("Failed to create session: %d %s", resp.Code, resp.Body)
	}
	var body httpAdapter.SessionResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("Failed to decode session: %v", err)
	}
	return body.SessionID
}

// Search posts a route query to a session.
func (ts *TestServer) Search(sessionID, from, to string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   sessionPath(sessionID, "/search"),
		Body:   map[string]string{"from": from, "to": to},
	})
}

// Sort posts a sort toggle to a session.
func (ts *TestServer) Sort(sessionID, field string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   sessionPath(sessionID, "/sort"),
		Body:   map[string]string{"field": field},
	})
}

// Filter posts a carrier filter to a session.
func (ts *TestServer) Filter(sessionID, carrier string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   sessionPath(sessionID, "/filter"),
		Body:   map[string]string{"carrier": carrier},
	})
}

// Toggle flips the expanded flag of an offer.
func (ts *TestServer) Toggle(sessionID string, index int) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   sessionPath(sessionID, "/offers/"+strconv.Itoa(index)+"/toggle"),
	})
}

// Offer fetches the detail of an offer.
func (ts *TestServer) Offer(sessionID string, index int) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   sessionPath(sessionID, "/offers/"+strconv.Itoa(index)),
	})
}

// Book confirms an offer.
func (ts *TestServer) Book(sessionID string, index int) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   sessionPath(sessionID, "/offers/"+strconv.Itoa(index)+"/book"),
	})
}

// CurrentBooking fetches the stored booking.
func (ts *TestServer) CurrentBooking() Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/booking"})
}

func sessionPath(sessionID, suffix string) string {
	return "/api/v1/sessions/" + sessionID + suffix
}

// ParseView parses the response body as a ViewResponse.
func (r *Response) ParseView() (*httpAdapter.ViewResponse, error) {
	var resp httpAdapter.ViewResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseBooking parses the response body as a BookingResponse.
func (r *Response) ParseBooking() (*httpAdapter.BookingResponse, error) {
	var resp httpAdapter.BookingResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SourceIndices returns the source index of every offer in view order.
func SourceIndices(offers []domain.Offer) []int {
	out := make([]int, len(offers))
	for i, o := range offers {
		out[i] = o.SourceIndex
	}
	return out
}

// ResponseSourceIndices is SourceIndices for a decoded view.
func ResponseSourceIndices(view *httpAdapter.ViewResponse) []int {
	out := make([]int, len(view.Offers))
	for i, o := range view.Offers {
		out[i] = o.SourceIndex
	}
	return out
}
