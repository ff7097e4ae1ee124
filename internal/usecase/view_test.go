package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmos-odyssey/route-offer-service/internal/domain"
)

var saturnQuery = domain.RouteQuery{From: "Earth", To: "Saturn"}

func loadedView(t *testing.T) *ViewState {
	t.Helper()
	v := NewViewState(newTestBuilder())
	require.NoError(t, v.OnNewData(earthToSaturn(), "Earth", "Saturn"))
	return v
}

func TestNewViewState_Empty(t *testing.T) {
	v := NewViewState(nil)
	snap := v.Snapshot()

	assert.Equal(t, domain.DefaultSortSpec(), snap.Sort)
	assert.Equal(t, domain.CarrierAll, snap.Carrier)
	assert.NotNil(t, snap.Offers)
	assert.Empty(t, snap.Offers)
	assert.Empty(t, snap.Carriers)
}

func TestViewState_OnNewData_DefaultOrder(t *testing.T) {
	v := loadedView(t)

	assert.Equal(t, []int{1, 2, 0, 3}, sourceIndexes(v.Offers()))
	assert.Equal(t, domain.DefaultSortSpec(), v.Sort())
	assert.Len(t, v.Itineraries(), 4)

	snap := v.Snapshot()
	assert.Equal(t, saturnQuery, snap.Query)
	assert.Equal(t, []string{"Explore Origin", "Galaxy Express", "SpaceX"}, snap.Carriers)
}

func TestViewState_OnNewData_ResetsSortAndFilter(t *testing.T) {
	v := loadedView(t)
	require.NoError(t, v.SortBy(domain.SortByPrice))
	v.FilterByCarrier("SpaceX")
	require.NoError(t, v.ToggleExpanded(0))

	require.NoError(t, v.OnNewData(earthToSaturn(), "Earth", "Saturn"))

	assert.Equal(t, domain.DefaultSortSpec(), v.Sort())
	assert.Equal(t, []int{1, 2, 0, 3}, sourceIndexes(v.Offers()))
	assert.Equal(t, domain.CarrierAll, v.Snapshot().Carrier)
	for _, o := range v.Offers() {
		assert.True(t, o.Visible)
		assert.False(t, o.Expanded)
	}
}

func TestViewState_OnNewData_ErrorKeepsState(t *testing.T) {
	v := loadedView(t)
	before := v.Offers()

	err := v.OnNewData([]domain.Itinerary{{}}, "Earth", "Pluto")
	assert.ErrorIs(t, err, domain.ErrEmptyItinerary)
	assert.Equal(t, before, v.Offers())
	assert.Equal(t, saturnQuery, v.Snapshot().Query)
}

func TestViewState_ApplyResult_DiscardsStale(t *testing.T) {
	v := NewViewState(newTestBuilder())

	first := v.BeginQuery()
	second := v.BeginQuery()

	require.NoError(t, v.ApplyResult(second, saturnQuery, earthToSaturn()))

	err := v.ApplyResult(first, domain.RouteQuery{From: "Earth", To: "Mars"}, earthToSaturn()[:1])
	assert.ErrorIs(t, err, domain.ErrStaleResult)
	assert.Equal(t, saturnQuery, v.Snapshot().Query)
	assert.Len(t, v.Offers(), 4)
}

func TestViewState_ApplyResult_LateArrivalOfNewest(t *testing.T) {
	v := NewViewState(newTestBuilder())

	first := v.BeginQuery()
	second := v.BeginQuery()

	assert.ErrorIs(t, v.ApplyResult(first, saturnQuery, earthToSaturn()), domain.ErrStaleResult)
	assert.Empty(t, v.Offers())

	require.NoError(t, v.ApplyResult(second, saturnQuery, earthToSaturn()[:2]))
	assert.Len(t, v.Offers(), 2)
}

func TestViewState_SortBy_Toggle(t *testing.T) {
	v := loadedView(t)

	require.NoError(t, v.SortBy(domain.SortByPrice))
	assert.Equal(t, domain.SortSpec{Field: domain.SortByPrice, Direction: domain.Descending}, v.Sort())
	assert.Equal(t, []int{0, 2, 1, 3}, sourceIndexes(v.Offers()))

	require.NoError(t, v.SortBy(domain.SortByPrice))
	assert.Equal(t, domain.Ascending, v.Sort().Direction)
	assert.Equal(t, []int{3, 1, 0, 2}, sourceIndexes(v.Offers()))

	err := v.SortBy("carrier")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Equal(t, domain.SortByPrice, v.Sort().Field)
}

func TestViewState_SortKeepsFilter(t *testing.T) {
	v := loadedView(t)
	v.FilterByCarrier("SpaceX")

	require.NoError(t, v.SortBy(domain.SortByStops))

	assert.Equal(t, []int{3, 0}, visibleIndexes(v.Offers()))
	assert.Equal(t, "SpaceX", v.Snapshot().Carrier)
}

func TestViewState_FilterByCarrier_EmptyMeansAll(t *testing.T) {
	v := loadedView(t)
	v.FilterByCarrier("SpaceX")
	v.FilterByCarrier("")

	assert.Equal(t, domain.CarrierAll, v.Snapshot().Carrier)
	assert.Len(t, visibleIndexes(v.Offers()), 4)
}

func TestViewState_ToggleExpanded(t *testing.T) {
	v := loadedView(t)

	require.NoError(t, v.ToggleExpanded(2))
	assert.True(t, v.Offers()[2].Expanded)
	require.NoError(t, v.ToggleExpanded(2))
	assert.False(t, v.Offers()[2].Expanded)

	assert.ErrorIs(t, v.ToggleExpanded(4), domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, v.ToggleExpanded(-1), domain.ErrIndexOutOfRange)
}

func TestViewState_DetailAfterSort(t *testing.T) {
	v := loadedView(t)
	require.NoError(t, v.SortBy(domain.SortByDuration))
	require.NoError(t, v.SortBy(domain.SortByDuration))

	// ascending duration puts the three-leg itinerary first
	detail, err := v.Detail(0)
	require.NoError(t, err)

	assert.Equal(t, 3, detail.Offer.SourceIndex)
	require.Len(t, detail.Legs, 3)
	assert.Equal(t, "d-1", detail.Legs[0].ID)
	assert.Equal(t, "30m", detail.Legs[0].LayoverLabel)

	_, err = v.Detail(9)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

func TestViewState_ConfirmRoundTrip(t *testing.T) {
	v := loadedView(t)
	require.NoError(t, v.SortBy(domain.SortByArrival))
	raw := v.Itineraries()

	for i, o := range v.Offers() {
		booking, err := v.Confirm(i)
		require.NoError(t, err)
		assert.Equal(t, o.ID, booking.Overview.ID)
		assert.Equal(t, raw[o.SourceIndex], booking.Legs)
	}
}

func TestViewState_SnapshotIsCopy(t *testing.T) {
	v := loadedView(t)
	snap := v.Snapshot()
	snap.Offers[0].Expanded = true

	assert.False(t, v.Offers()[0].Expanded)
}
