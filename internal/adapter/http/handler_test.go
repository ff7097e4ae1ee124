package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/http/response"
	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/usecase"
	"github.com/cosmos-odyssey/route-offer-service/test/testutil"
)

// fakeStream hands every subscriber the same channel.
type fakeStream struct {
	bookings chan domain.Booking
	err      error
}

func (f *fakeStream) Subscribe(_ context.Context) (<-chan domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

// setupTestHandler creates a test Echo instance with a mocked session service.
func setupTestHandler(t *testing.T, stream BookingStream) (*echo.Echo, *usecase.MockSessionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := usecase.NewMockSessionService(ctrl)

	e := echo.New()
	h := NewHandler(sessions, stream, HandlerConfig{})
	RegisterRoutes(e, h)
	return e, sessions
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = []byte(b)
	default:
		reqBody, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func sampleOffer(sourceIndex int, carrier, price string) domain.Offer {
	return domain.Offer{
		SourceIndex:     sourceIndex,
		ID:              fmt.Sprintf("offer-%d", sourceIndex),
		LegIDs:          []string{fmt.Sprintf("leg-%d", sourceIndex)},
		Carrier:         carrier,
		Origin:          "Earth",
		Destination:     "Mars",
		TotalPrice:      testutil.Price(price),
		StopLabel:       "No stops",
		Departure:       testutil.BaseTime,
		Arrival:         testutil.BaseTime.Add(5 * time.Hour),
		TimeRangeLabel:  "Mar 5, 14:30 - Mar 5, 19:30",
		DurationMinutes: 300,
		DurationLabel:   "5h",
		Visible:         true,
	}
}

func sampleView() domain.View {
	hidden := sampleOffer(0, "Galaxy Express", "250.25")
	hidden.Visible = false
	return domain.View{
		SessionID: "session-1",
		Query:     domain.RouteQuery{From: "Earth", To: "Mars"},
		Sort:      domain.DefaultSortSpec(),
		Carrier:   "SpaceX",
		Carriers:  []string{"Galaxy Express", "SpaceX"},
		Offers:    []domain.Offer{sampleOffer(1, "SpaceX", "100.5"), hidden},
	}
}

func sampleBooking() domain.Booking {
	return domain.Booking{
		Reference:   "BK-ABC123",
		Overview:    sampleOffer(1, "SpaceX", "100.5"),
		Legs:        testutil.DirectItinerary("leg-1", "Earth", "Mars", "SpaceX", "100.5", 0, 5*time.Hour),
		ConfirmedAt: testutil.BaseTime.Add(time.Hour),
	}
}

func TestHealth(t *testing.T) {
	e, _ := setupTestHandler(t, nil)

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRoutes_Success(t *testing.T) {
	e, sessions := setupTestHandler(t, nil)

	itineraries := []domain.Itinerary{
		testutil.DirectItinerary("a", "Earth", "Mars", "SpaceX", "100.5", 0, 5*time.Hour),
		testutil.ChainItinerary("b", "Galaxy Express", "50", time.Hour, 2*time.Hour, 30*time.Minute, "Earth", "Venus", "Mars"),
	}
	sessions.EXPECT().
		Routes(gomock.Any(), domain.RouteQuery{From: "Earth", To: "Mars"}).
		Return(itineraries, nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/routes?from=%20Earth%20&to=Mars", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[RoutesResponse](t, rec)
	assert.Equal(t, QueryResponse{From: "Earth", To: "Mars"}, resp.Query)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Itineraries[1], 2)
	assert.Equal(t, "100.500", resp.Itineraries[0][0].Price)
	assert.Equal(t, "b-1", resp.Itineraries[1][0].ID)
	assert.Empty(t, resp.Itineraries[1][0].StartLabel, "raw legs carry no display labels")
}

func TestRoutes_Validation(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFields []string
	}{
		{name: "missing both", query: "", wantFields: []string{"from", "to"}},
		{name: "blank from", query: "?from=%20%20&to=Mars", wantFields: []string{"from"}},
		{name: "missing to", query: "?from=Earth", wantFields: []string{"to"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := setupTestHandler(t, nil)

			rec := makeRequest(e, http.MethodGet, "/api/v1/routes"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeBody[response.ErrorDetail](t, rec)
			assert.Equal(t, response.CodeValidationError, resp.Code)
			assert.Equal(t, "Invalid parameters", resp.Message)
			assert.Len(t, resp.Details, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Equal(t, f+" is required", resp.Details[f])
			}
		})
	}
}

func TestRoutes_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "timeout",
			err:        domain.NewFetchError("routes", 0, context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "cancelled",
			err:        fmt.Errorf("fetch: %w", context.Canceled),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "retryable upstream failure",
			err:        domain.NewRetryableFetchError("routes", http.StatusBadGateway, errors.New("bad gateway")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   response.CodeServiceUnavailable,
		},
		{
			name:       "breaker open",
			err:        domain.NewFetchError("routes", 0, gobreaker.ErrOpenState),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   response.CodeServiceUnavailable,
		},
		{
			name:       "permanent upstream failure",
			err:        domain.NewFetchError("routes", http.StatusNotFound, errors.New("no such route")),
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeBadGateway,
		},
		{
			name:       "empty itinerary",
			err:        fmt.Errorf("build offers: %w", domain.ErrEmptyItinerary),
			wantStatus: http.StatusBadGateway,
			wantCode:   response.CodeBadGateway,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sessions := setupTestHandler(t, nil)
			sessions.EXPECT().Routes(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := makeRequest(e, http.MethodGet, "/api/v1/routes?from=Earth&to=Mars", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeBody[response.ErrorDetail](t, rec).Code)
		})
	}
}

func TestPlanetsAndCompanies(t *testing.T) {
	e, sessions := setupTestHandler(t, nil)
	sessions.EXPECT().Planets(gomock.Any()).Return([]string{"Earth", "Mars"}, nil)
	sessions.EXPECT().Companies(gomock.Any()).Return(nil, nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/planets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":["Earth","Mars"],"total":2}`, rec.Body.String())

	rec = makeRequest(e, http.MethodGet, "/api/v1/companies", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":0}`, rec.Body.String())
}

func TestCreateSession(t *testing.T) {
	e, sessions := setupTestHandler(t, nil)
	sessions.EXPECT().CreateSession(gomock.Any()).Return(domain.View{SessionID: "session-1"}, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/sessions", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "session-1", decodeBody[SessionResponse](t, rec).SessionID)
}

func TestGetSession(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		sessions.EXPECT().View(gomock.Any(), "session-1").Return(sampleView(), nil)

		rec := makeRequest(e, http.MethodGet, "/api/v1/sessions/session-1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[ViewResponse](t, rec)
		assert.Equal(t, "session-1", resp.SessionID)
		assert.Equal(t, SortResponse{Field: "departure", Direction: "asc"}, resp.Sort)
		assert.Equal(t, "SpaceX", resp.Carrier)
		assert.Equal(t, 1, resp.VisibleCount)
		require.Len(t, resp.Offers, 2)
		assert.Equal(t, 0, resp.Offers[0].Index)
		assert.Equal(t, 1, resp.Offers[0].SourceIndex)
		assert.Equal(t, "100.500", resp.Offers[0].TotalPrice)
		assert.Equal(t, 1, resp.Offers[1].Index)
		assert.False(t, resp.Offers[1].Visible)
	})

	t.Run("expired", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		sessions.EXPECT().View(gomock.Any(), "gone").Return(domain.View{}, domain.ErrSessionNotFound)

		rec := makeRequest(e, http.MethodGet, "/api/v1/sessions/gone", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, response.CodeSessionNotFound, decodeBody[response.ErrorDetail](t, rec).Code)
	})
}

func TestSearch(t *testing.T) {
	t.Run("success trims input", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		sessions.EXPECT().
			Search(gomock.Any(), "session-1", domain.RouteQuery{From: "Earth", To: "Mars"}).
			Return(sampleView(), nil)

		rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/search",
			map[string]string{"from": " Earth", "to": "Mars "})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("superseded", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		sessions.EXPECT().
			Search(gomock.Any(), "session-1", gomock.Any()).
			Return(domain.View{}, fmt.Errorf("%w: result 1 superseded by 2", domain.ErrStaleResult))

		rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/search",
			map[string]string{"from": "Earth", "to": "Mars"})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, response.CodeStaleResult, decodeBody[response.ErrorDetail](t, rec).Code)
	})

	t.Run("whitespace only", func(t *testing.T) {
		e, _ := setupTestHandler(t, nil)

		rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/search",
			map[string]string{"from": "   ", "to": "Mars"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "from is required", decodeBody[response.ErrorDetail](t, rec).Details["from"])
	})

	t.Run("malformed body", func(t *testing.T) {
		e, _ := setupTestHandler(t, nil)

		rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/search", `{"from":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, response.MsgInvalidRequestBody, decodeBody[response.ErrorDetail](t, rec).Message)
	})
}

func TestSort(t *testing.T) {
	t.Run("valid field", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		view := sampleView()
		view.Sort = domain.SortSpec{Field: domain.SortByPrice, Direction: domain.Descending}
		sessions.EXPECT().Sort(gomock.Any(), "session-1", domain.SortByPrice).Return(view, nil)

		rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/sort", map[string]string{"field": "Price"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, SortResponse{Field: "price", Direction: "desc"}, decodeBody[ViewResponse](t, rec).Sort)
	})

	t.Run("unknown field", func(t *testing.T) {
		e, _ := setupTestHandler(t, nil)

		rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/sort", map[string]string{"field": "carrier"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "field must be one of: price, duration, departure, arrival, stops",
			decodeBody[response.ErrorDetail](t, rec).Details["field"])
	})
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name        string
		body        map[string]string
		wantCarrier string
	}{
		{name: "carrier", body: map[string]string{"carrier": "SpaceX"}, wantCarrier: "SpaceX"},
		{name: "all", body: map[string]string{"carrier": "all"}, wantCarrier: domain.CarrierAll},
		{name: "empty means all", body: map[string]string{}, wantCarrier: domain.CarrierAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, sessions := setupTestHandler(t, nil)
			sessions.EXPECT().Filter(gomock.Any(), "session-1", tt.wantCarrier).Return(sampleView(), nil)

			rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/filter", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestToggleOffer(t *testing.T) {
	t.Run("toggles", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		sessions.EXPECT().ToggleExpanded(gomock.Any(), "session-1", 1).Return(sampleView(), nil)

		rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/offers/1/toggle", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("out of range", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		sessions.EXPECT().
			ToggleExpanded(gomock.Any(), "session-1", 9).
			Return(domain.View{}, fmt.Errorf("%w: 9 not in [0, 2)", domain.ErrIndexOutOfRange))

		rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/offers/9/toggle", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, response.CodeOfferNotFound, decodeBody[response.ErrorDetail](t, rec).Code)
	})

	t.Run("bad index", func(t *testing.T) {
		for _, index := range []string{"abc", "-1", "1.5"} {
			e, _ := setupTestHandler(t, nil)

			rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/offers/"+index+"/toggle", nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code, index)
			assert.Contains(t, decodeBody[response.ErrorDetail](t, rec).Details, "index", index)
		}
	})
}

func TestGetOffer(t *testing.T) {
	e, sessions := setupTestHandler(t, nil)

	legs := testutil.ChainItinerary("x", "SpaceX", "40.125", 0, 3*time.Hour, 2*time.Hour, "Earth", "Venus", "Mars")
	detail := domain.OfferDetail{
		Offer: sampleOffer(3, "SpaceX", "80.25"),
		Legs: []domain.LegDetail{
			{Leg: legs[0], StartLabel: "Mar 5, 14:30", EndLabel: "Mar 5, 17:30", DurationLabel: "3h", LayoverLabel: "2h"},
			{Leg: legs[1], StartLabel: "Mar 5, 19:30", EndLabel: "Mar 5, 22:30", DurationLabel: "3h"},
		},
	}
	sessions.EXPECT().OfferDetail(gomock.Any(), "session-1", 2).Return(detail, nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/sessions/session-1/offers/2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[OfferDetailResponse](t, rec)
	assert.Equal(t, 2, resp.Offer.Index)
	assert.Equal(t, 3, resp.Offer.SourceIndex)
	require.Len(t, resp.Legs, 2)
	assert.Equal(t, "40.125", resp.Legs[0].Price)
	assert.Equal(t, "2h", resp.Legs[0].Layover)
	assert.Empty(t, resp.Legs[1].Layover)
	assert.Equal(t, "Mar 5, 19:30", resp.Legs[1].StartLabel)
}

func TestBookOffer(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		sessions.EXPECT().Book(gomock.Any(), "session-1", 0).Return(sampleBooking(), nil)

		rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/offers/0/book", nil)

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeBody[BookingResponse](t, rec)
		assert.Equal(t, "BK-ABC123", resp.Reference)
		assert.True(t, resp.ConfirmedAt.Equal(testutil.BaseTime.Add(time.Hour)))
		assert.Equal(t, "100.500", resp.Overview.TotalPrice)
		require.Len(t, resp.Legs, 1)
		assert.Equal(t, "leg-1", resp.Legs[0].ID)
	})

	t.Run("store failure", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		sessions.EXPECT().
			Book(gomock.Any(), "session-1", 0).
			Return(domain.Booking{}, fmt.Errorf("store booking: %w", errors.New("redis down")))

		rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/session-1/offers/0/book", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, response.MsgInternalError, decodeBody[response.ErrorDetail](t, rec).Message)
	})
}

func TestCurrentBooking(t *testing.T) {
	t.Run("none yet", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		sessions.EXPECT().CurrentBooking(gomock.Any()).Return(domain.Booking{}, domain.ErrNotFound)

		rec := makeRequest(e, http.MethodGet, "/api/v1/booking", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, response.MsgNoBooking, decodeBody[response.ErrorDetail](t, rec).Message)
	})

	t.Run("stored", func(t *testing.T) {
		e, sessions := setupTestHandler(t, nil)
		sessions.EXPECT().CurrentBooking(gomock.Any()).Return(sampleBooking(), nil)

		rec := makeRequest(e, http.MethodGet, "/api/v1/booking", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "BK-ABC123", decodeBody[BookingResponse](t, rec).Reference)
	})
}

func TestStreamBookings(t *testing.T) {
	stream := &fakeStream{bookings: make(chan domain.Booking, 1)}
	e, _ := setupTestHandler(t, stream)

	srv := httptest.NewServer(e)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/booking/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	stream.bookings <- sampleBooking()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event BookingEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventBookingConfirmed, event.Type)
	require.NotNil(t, event.Booking)
	assert.Equal(t, "BK-ABC123", event.Booking.Reference)

	// Closing the feed ends the stream with a normal close
	close(stream.bookings)
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestStreamBookings_Unavailable(t *testing.T) {
	e, _ := setupTestHandler(t, nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/booking/stream", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCheckOrigin(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{name: "no origin header", allowed: []string{"https://odyssey.example"}, origin: "", want: true},
		{name: "no restriction", allowed: nil, origin: "https://evil.example", want: true},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://any.example", want: true},
		{name: "listed", allowed: []string{"https://odyssey.example"}, origin: "https://odyssey.example", want: true},
		{name: "not listed", allowed: []string{"https://odyssey.example"}, origin: "https://evil.example", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(nil, nil, HandlerConfig{AllowedOrigins: tt.allowed})
			req := httptest.NewRequest(http.MethodGet, "/api/v1/booking/stream", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, h.checkOrigin(req))
		})
	}
}
