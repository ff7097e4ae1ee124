package fixture

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
	"github.com/cosmos-odyssey/route-offer-service/test/testutil"
)

// TestSource_ImplementsInterface ensures Source implements RouteSource.
func TestSource_ImplementsInterface(t *testing.T) {
	var _ domain.RouteSource = (*Source)(nil)
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const smallFixture = `{
	"planets": ["Earth", "Mars"],
	"companies": [{"id": "c1", "name": "SpaceX"}],
	"routes": [
		{
			"from": "Earth",
			"to": "Mars",
			"itineraries": [
				[{
					"id": "leg-1", "from": "Earth", "to": "Mars",
					"flightStart": "2025-03-05T14:30:00Z", "flightEnd": "2025-03-05T20:00:00Z",
					"company": {"id": "c1", "name": "SpaceX"}, "price": 100.5
				}]
			]
		}
	]
}`

func TestSource_FetchRoutes(t *testing.T) {
	src := NewSource(writeFixture(t, smallFixture))

	tests := []struct {
		name  string
		query domain.RouteQuery
		want  int
	}{
		{name: "known pair", query: domain.RouteQuery{From: "Earth", To: "Mars"}, want: 1},
		{name: "case-insensitive", query: domain.RouteQuery{From: "earth", To: "MARS"}, want: 1},
		{name: "reverse direction", query: domain.RouteQuery{From: "Mars", To: "Earth"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			its, err := src.FetchRoutes(context.Background(), tt.query)
			require.NoError(t, err)
			assert.NotNil(t, its)
			assert.Len(t, its, tt.want)
		})
	}
}

func TestSource_FetchNames(t *testing.T) {
	src := NewSource(writeFixture(t, smallFixture))

	planets, err := src.FetchPlanets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Earth", "Mars"}, planets)

	companies, err := src.FetchCompanies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"SpaceX"}, companies)
}

func TestSource_MissingSections(t *testing.T) {
	src := NewSource(writeFixture(t, `{}`))

	planets, err := src.FetchPlanets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, planets)
}

func TestSource_FileNotFound(t *testing.T) {
	src := NewSource("/nonexistent/path/to/routes.json")

	_, err := src.FetchRoutes(context.Background(), domain.RouteQuery{From: "Earth", To: "Mars"})
	require.Error(t, err)

	var fe *domain.FetchError
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Retryable, "file read errors should be retryable")
}

func TestSource_InvalidJSON(t *testing.T) {
	src := NewSource(writeFixture(t, `{"routes": [`))

	_, err := src.FetchPlanets(context.Background())
	require.Error(t, err)
	assert.False(t, domain.IsRetryableFetch(err))
}

func TestSource_ContextCancellation(t *testing.T) {
	src := NewSource(writeFixture(t, smallFixture), WithLatency(time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.FetchRoutes(ctx, domain.RouteQuery{From: "Earth", To: "Mars"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, domain.IsRetryableFetch(err), "context cancellation should not be retryable")
}

func TestSource_Latency(t *testing.T) {
	src := NewSource(writeFixture(t, smallFixture), WithLatency(20*time.Millisecond))

	start := time.Now()
	_, err := src.FetchCompanies(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSource_WithRealMockFile(t *testing.T) {
	src := NewSource(testutil.MockPath(t, "routes.json"))

	planets, err := src.FetchPlanets(context.Background())
	require.NoError(t, err)
	assert.Contains(t, planets, "Earth")

	its, err := src.FetchRoutes(context.Background(), domain.RouteQuery{From: "Earth", To: "Saturn"})
	require.NoError(t, err)
	require.NotEmpty(t, its)
	for _, it := range its {
		require.NotEmpty(t, it)
		assert.Equal(t, "Earth", it.First().From)
		assert.Equal(t, "Saturn", it.Last().To)
	}
}
