package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/model"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

func sampleResults() []dto.ShopResult {
	return []dto.ShopResult{
		{ID: 1, Name: "near and good", Distance: float64Ptr(2), AverageRating: 4.5, ReviewCount: 2},
		{ID: 2, Name: "far and good", Distance: float64Ptr(120), AverageRating: 5, ReviewCount: 1},
		{ID: 3, Name: "near and bad", Distance: float64Ptr(5), AverageRating: 2, ReviewCount: 3},
		{ID: 4, Name: "unrated", Distance: float64Ptr(1), AverageRating: 0, ReviewCount: 0},
	}
}

func TestApplyPostFiltersDistance(t *testing.T) {
	lat, lng := 45.75, 4.85
	q := &dto.FindShopsQuery{
		MaxDistance: float64Ptr(10),
		UserLat:     &lat,
		UserLng:     &lng,
	}
	filtered := applyPostFilters(sampleResults(), q)
	require.Len(t, filtered, 3)
	for _, r := range filtered {
		require.NotNil(t, r.Distance)
		assert.LessOrEqual(t, *r.Distance, 10.0)
	}
}

// maxDistance without a viewer location is silently skipped, not an error.
func TestApplyPostFiltersDistanceSkippedWithoutLocation(t *testing.T) {
	q := &dto.FindShopsQuery{MaxDistance: float64Ptr(10)}
	filtered := applyPostFilters(sampleResults(), q)
	assert.Len(t, filtered, 4)
}

func TestApplyPostFiltersMinRating(t *testing.T) {
	q := &dto.FindShopsQuery{MinRating: intPtr(4)}
	filtered := applyPostFilters(sampleResults(), q)
	require.Len(t, filtered, 2)
	for _, r := range filtered {
		assert.GreaterOrEqual(t, r.AverageRating, 4.0)
	}
}

// A 4.0 average passes minRating=4 and fails minRating=5.
func TestMinRatingBoundary(t *testing.T) {
	results := []dto.ShopResult{{ID: 1, AverageRating: 4.0, ReviewCount: 3}}
	passed := applyPostFilters(results, &dto.FindShopsQuery{MinRating: intPtr(4)})
	assert.Len(t, passed, 1)
	excluded := applyPostFilters(results, &dto.FindShopsQuery{MinRating: intPtr(5)})
	assert.Empty(t, excluded)
}

// The zero-for-empty rating convention means unrated shops fail any floor.
func TestMinRatingExcludesUnrated(t *testing.T) {
	q := &dto.FindShopsQuery{MinRating: intPtr(1)}
	filtered := applyPostFilters(sampleResults(), q)
	for _, r := range filtered {
		assert.NotEqual(t, int64(4), r.ID)
	}
}

func TestSortByDistanceAscending(t *testing.T) {
	results := []dto.ShopResult{
		{ID: 1, Distance: float64Ptr(50)},
		{ID: 2, Distance: nil},
		{ID: 3, Distance: float64Ptr(3)},
		{ID: 4, Distance: float64Ptr(17)},
	}
	sortByDistance(results, "asc")
	ids := []int64{results[0].ID, results[1].ID, results[2].ID, results[3].ID}
	assert.Equal(t, []int64{3, 4, 1, 2}, ids)
}

func TestSortByDistanceDescendingUnknownLast(t *testing.T) {
	results := []dto.ShopResult{
		{ID: 1, Distance: nil},
		{ID: 2, Distance: float64Ptr(3)},
		{ID: 3, Distance: float64Ptr(17)},
	}
	sortByDistance(results, "desc")
	ids := []int64{results[0].ID, results[1].ID, results[2].ID}
	assert.Equal(t, []int64{3, 2, 1}, ids)
}

func TestBuildPagination(t *testing.T) {
	p := buildPagination(1, 20, 45)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = buildPagination(3, 20, 45)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = buildPagination(2, 20, 45)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = buildPagination(1, 20, 0)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildShopResultComputesDerivedFields(t *testing.T) {
	lat, lng := 45.75, 4.85
	shop := &model.Shop{
		ID:   7,
		Name: "Atelier Tempus",
		Type: model.ShopTypeRepair,
		Lat:  48.8566,
		Lng:  2.3522,
		Reviews: []model.Review{
			{Rating: 5}, {Rating: 4}, {Rating: 3},
		},
	}
	q := &dto.FindShopsQuery{UserLat: &lat, UserLng: &lng}
	result := buildShopResult(shop, q)

	assert.Equal(t, 3, result.ReviewCount)
	assert.Equal(t, 4.0, result.AverageRating)
	require.NotNil(t, result.Distance)
	assert.InDelta(t, 393, *result.Distance, 2.0)
	assert.NotNil(t, result.Brands)
}

func TestBuildShopResultNoViewerLocation(t *testing.T) {
	shop := &model.Shop{ID: 7, Lat: 48.85, Lng: 2.35}
	result := buildShopResult(shop, &dto.FindShopsQuery{})
	assert.Nil(t, result.Distance)
	assert.Equal(t, 0.0, result.AverageRating)
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "shops.name ASC", orderClause("name", "asc"))
	assert.Equal(t, "shops.name DESC", orderClause("name", "desc"))
	assert.Equal(t, "shops.created_at DESC", orderClause("createdAt", "desc"))
	// The distance sort is applied in memory; datastore order is arbitrary.
	assert.Equal(t, "shops.id ASC", orderClause("distance", "desc"))
	assert.Contains(t, orderClause("rating", "desc"), "AVG(r.rating)")
}
