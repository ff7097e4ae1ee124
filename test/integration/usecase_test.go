package integration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/provider/resilient"
	"github.com/cosmos-odyssey/route-offer-service/internal/adapter/store"
	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/logger"
	"github.com/cosmos-odyssey/route-offer-service/internal/infrastructure/retry"
	"github.com/cosmos-odyssey/route-offer-service/internal/usecase"
	"github.com/cosmos-odyssey/route-offer-service/test/mock"
	"github.com/cosmos-odyssey/route-offer-service/test/testutil"
)

var earthToJupiter = domain.RouteQuery{From: "Earth", To: "Jupiter"}

// TestSession_SearchSortFilterBook walks one session through the whole
// offer lifecycle and checks the booking reaches store and feed.
func TestSession_SearchSortFilterBook(t *testing.T) {
	// Arrange
	source := mock.NewSource().WithItineraries(mock.SampleItineraries())
	stack := NewStack(t, source, nil)
	ctx := context.Background()

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	bookings, err := stack.Feed.Subscribe(subCtx)
	require.NoError(t, err)

	created, err := stack.Sessions.CreateSession(ctx)
	require.NoError(t, err)
	id := created.SessionID

	// Act: search resets to departure ascending
	view, err := stack.Sessions.Search(ctx, id, earthToJupiter)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSortSpec(), view.Sort)
	assert.Equal(t, []int{0, 1, 2}, SourceIndices(view.Offers))
	assert.Equal(t, []string{"Galaxy Express", "Space Voyager", "Spacelux"}, view.Carriers)

	// A new field sorts descending first, then flips
	view, err = stack.Sessions.Sort(ctx, id, domain.SortByPrice)
	require.NoError(t, err)
	assert.Equal(t, domain.Descending, view.Sort.Direction)
	assert.Equal(t, []int{0, 2, 1}, SourceIndices(view.Offers))

	view, err = stack.Sessions.Sort(ctx, id, domain.SortByPrice)
	require.NoError(t, err)
	assert.Equal(t, domain.Ascending, view.Sort.Direction)
	assert.Equal(t, []int{1, 2, 0}, SourceIndices(view.Offers))

	// Filtering hides rows without reordering them
	view, err = stack.Sessions.Filter(ctx, id, "Spacelux")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, SourceIndices(view.Offers))
	for _, o := range view.Offers {
		assert.Equal(t, o.Carrier == "Spacelux", o.Visible, o.Carrier)
	}

	view, err = stack.Sessions.ToggleExpanded(ctx, id, 0)
	require.NoError(t, err)
	assert.True(t, view.Offers[0].Expanded)

	// The cheapest offer is the one-stop Galaxy Express itinerary
	booking, err := stack.Sessions.Book(ctx, id, 0)
	require.NoError(t, err)

	// Assert
	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, 1, booking.Overview.SourceIndex)
	assert.Equal(t, "Galaxy Express", booking.Overview.Carrier)
	assert.True(t, booking.Overview.TotalPrice.Equal(testutil.Price("100")))
	assert.Equal(t, 1, booking.Overview.StopCount)
	require.Len(t, booking.Legs, 2)
	assert.Equal(t, "b-1", booking.Legs[0].ID)
	assert.Equal(t, "b-2", booking.Legs[1].ID)

	stored, err := stack.Sessions.CurrentBooking(ctx)
	require.NoError(t, err)
	assert.Equal(t, booking.Reference, stored.Reference)
	assert.True(t, stored.Overview.TotalPrice.Equal(booking.Overview.TotalPrice))

	select {
	case got := <-bookings:
		assert.Equal(t, booking.Reference, got.Reference)
		assert.Len(t, got.Legs, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("booking was not broadcast")
	}
}

// TestSession_StaleResultDiscarded verifies a slow search that is overtaken
// by a newer one cannot overwrite the newer result.
func TestSession_StaleResultDiscarded(t *testing.T) {
	// Arrange
	source := mock.NewSource().
		WithRoute("Earth", "Mars", mock.DirectItineraries("Earth", "Mars", "Slowpoke", 4)).
		WithRouteDelay("Earth", "Mars", 300*time.Millisecond).
		WithRoute("Earth", "Jupiter", mock.SampleItineraries())
	stack := NewStack(t, source, nil)
	ctx := context.Background()

	created, err := stack.Sessions.CreateSession(ctx)
	require.NoError(t, err)
	id := created.SessionID

	// Act
	var wg sync.WaitGroup
	var staleErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, staleErr = stack.Sessions.Search(ctx, id, domain.RouteQuery{From: "Earth", To: "Mars"})
	}()

	require.Eventually(t, func() bool { return source.CallCount() == 1 }, time.Second, 5*time.Millisecond)

	view, err := stack.Sessions.Search(ctx, id, earthToJupiter)
	require.NoError(t, err)
	wg.Wait()

	// Assert
	require.Error(t, staleErr)
	assert.True(t, domain.IsStaleResult(staleErr))

	view, err = stack.Sessions.View(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, earthToJupiter, view.Query)
	assert.Len(t, view.Offers, 3)
}

// TestSession_FailedSearchKeepsPreviousView verifies an upstream failure leaves
// the loaded offers and sort untouched.
func TestSession_FailedSearchKeepsPreviousView(t *testing.T) {
	// Arrange
	source := mock.NewSource().
		WithRoute("Earth", "Jupiter", mock.SampleItineraries()).
		WithRouteError("Earth", "Pluto", domain.NewFetchError(resilient.EndpointRoutes, 500, errors.New("boom")))
	stack := NewStack(t, source, nil)
	ctx := context.Background()

	created, err := stack.Sessions.CreateSession(ctx)
	require.NoError(t, err)
	id := created.SessionID

	_, err = stack.Sessions.Search(ctx, id, earthToJupiter)
	require.NoError(t, err)
	_, err = stack.Sessions.Sort(ctx, id, domain.SortByDuration)
	require.NoError(t, err)

	// Act
	_, err = stack.Sessions.Search(ctx, id, domain.RouteQuery{From: "Earth", To: "Pluto"})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	view, err := stack.Sessions.View(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, earthToJupiter, view.Query)
	assert.Equal(t, domain.SortSpec{Field: domain.SortByDuration, Direction: domain.Descending}, view.Sort)
	assert.Equal(t, []int{0, 1, 2}, SourceIndices(view.Offers))
}

// TestSession_SearchTimeout verifies the per-search timeout bounds a slow upstream.
func TestSession_SearchTimeout(t *testing.T) {
	// Arrange
	source := mock.NewSource().
		WithItineraries(mock.SampleItineraries()).
		WithDelay(time.Second)
	stack := NewStack(t, source, &usecase.SessionConfig{SearchTimeout: 50 * time.Millisecond})
	ctx := context.Background()

	created, err := stack.Sessions.CreateSession(ctx)
	require.NoError(t, err)

	// Act
	start := time.Now()
	_, err = stack.Sessions.Search(ctx, created.SessionID, earthToJupiter)
	elapsed := time.Since(start)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, elapsed, 500*time.Millisecond)
}

// TestSession_ContextCancellation verifies a cancelled client aborts the fetch.
func TestSession_ContextCancellation(t *testing.T) {
	// Arrange
	source := mock.NewSource().
		WithItineraries(mock.SampleItineraries()).
		WithDelay(time.Second)
	stack := NewStack(t, source, nil)

	created, err := stack.Sessions.CreateSession(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	// Act
	_, err = stack.Sessions.Search(ctx, created.SessionID, earthToJupiter)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSession_ResilientSourceRetries verifies transient upstream failures are
// retried through the resilient source before surfacing.
func TestSession_ResilientSourceRetries(t *testing.T) {
	// Arrange
	flaky := mock.NewSource().
		WithError(domain.NewRetryableFetchError(resilient.EndpointRoutes, 503, errors.New("unavailable")))

	cfg := resilient.DefaultConfig()
	cfg.RequestsPerSecond = 0
	cfg.BreakerMaxFailures = 100
	cfg.Retry = retry.DefaultConfig.
		WithMaxAttempts(3).
		WithInitialDelay(time.Millisecond).
		WithMaxDelay(5 * time.Millisecond)

	stack := NewStack(t, resilient.NewSource(flaky, cfg, logger.Nop()), nil)
	ctx := context.Background()

	created, err := stack.Sessions.CreateSession(ctx)
	require.NoError(t, err)

	// Act
	_, err = stack.Sessions.Search(ctx, created.SessionID, earthToJupiter)

	// Assert
	require.Error(t, err)
	assert.True(t, domain.IsRetryableFetch(err))
	assert.Equal(t, 3, flaky.CallCount())
}

// TestSession_BookingPersistsInBadger verifies a booking survives a fresh
// repository over the same Badger store.
func TestSession_BookingPersistsInBadger(t *testing.T) {
	// Arrange
	source := mock.NewSource().WithItineraries(mock.SampleItineraries())
	stack := NewStackWithStore(t, source, store.Config{Backend: store.BackendBadger}, nil)
	ctx := context.Background()

	created, err := stack.Sessions.CreateSession(ctx)
	require.NoError(t, err)
	_, err = stack.Sessions.Search(ctx, created.SessionID, earthToJupiter)
	require.NoError(t, err)

	// Act
	booking, err := stack.Sessions.Book(ctx, created.SessionID, 2)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, store.BackendBadger, stack.Store.Backend())

	reloaded, err := store.NewBookingRepository(stack.Store).Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, booking.Reference, reloaded.Reference)
	assert.Equal(t, "Spacelux", reloaded.Overview.Carrier)
	assert.True(t, reloaded.Overview.TotalPrice.Equal(testutil.Price("200")))
	require.Len(t, reloaded.Legs, 1)
	assert.True(t, reloaded.Legs[0].FlightStart.Equal(booking.Legs[0].FlightStart))
}

// TestSession_SecondBookingReplacesFirst verifies only the latest booking is kept.
func TestSession_SecondBookingReplacesFirst(t *testing.T) {
	// Arrange
	source := mock.NewSource().WithItineraries(mock.SampleItineraries())
	stack := NewStack(t, source, nil)
	ctx := context.Background()

	created, err := stack.Sessions.CreateSession(ctx)
	require.NoError(t, err)
	_, err = stack.Sessions.Search(ctx, created.SessionID, earthToJupiter)
	require.NoError(t, err)

	// Act
	first, err := stack.Sessions.Book(ctx, created.SessionID, 0)
	require.NoError(t, err)
	second, err := stack.Sessions.Book(ctx, created.SessionID, 1)
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, first.Reference, second.Reference)
	current, err := stack.Sessions.CurrentBooking(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Reference, current.Reference)
}

// TestSession_NoBookingYet verifies the empty booking slot reports not found.
func TestSession_NoBookingYet(t *testing.T) {
	stack := NewStack(t, mock.NewSource(), nil)

	_, err := stack.Sessions.CurrentBooking(context.Background())

	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

// TestSession_EmptyResult verifies a query with no routes yields an empty view.
func TestSession_EmptyResult(t *testing.T) {
	stack := NewStack(t, mock.NewSource(), nil)
	ctx := context.Background()

	created, err := stack.Sessions.CreateSession(ctx)
	require.NoError(t, err)

	view, err := stack.Sessions.Search(ctx, created.SessionID, earthToJupiter)

	require.NoError(t, err)
	assert.Empty(t, view.Offers)
	assert.Empty(t, view.Carriers)

	_, err = stack.Sessions.Book(ctx, created.SessionID, 0)
	assert.True(t, domain.IsIndexOutOfRange(err))
}
