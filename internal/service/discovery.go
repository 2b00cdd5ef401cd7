package service

import (
	"math"
	"sort"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/model"
)

// buildShopResult enriches a fetched shop with the computed fields the
// post-fetch filters depend on.
func buildShopResult(shop *model.Shop, q *dto.FindShopsQuery) dto.ShopResult {
	count, average := AggregateRatings(shop.Reviews)
	brands := shop.Brands
	if brands == nil {
		brands = []model.Brand{}
	}
	return dto.ShopResult{
		ID:            shop.ID,
		Name:          shop.Name,
		Type:          shop.Type,
		Lat:           shop.Lat,
		Lng:           shop.Lng,
		Address:       shop.Address,
		Brands:        brands,
		ReviewCount:   count,
		AverageRating: average,
		Distance:      DistanceFrom(q.UserLat, q.UserLng, shop.Lat, shop.Lng),
		CreatedAt:     shop.CreatedAt,
	}
}

// applyPostFilters applies the distance filter, then the rating filter.
// The distance filter is silently skipped when the viewer location is
// incomplete; an unknown distance never excludes a shop.
func applyPostFilters(results []dto.ShopResult, q *dto.FindShopsQuery) []dto.ShopResult {
	filtered := results[:0]
	distanceFilter := q.MaxDistance != nil && q.HasViewerLocation()
	for _, r := range results {
		if distanceFilter && (r.Distance == nil || *r.Distance > *q.MaxDistance) {
			continue
		}
		if q.MinRating != nil && r.AverageRating < float64(*q.MinRating) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// sortByDistance re-sorts the page in memory by computed distance. Shops with
// an unknown distance sort last regardless of direction.
func sortByDistance(results []dto.ShopResult, order string) {
	sort.SliceStable(results, func(i, j int) bool {
		di, dj := results[i].Distance, results[j].Distance
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		if order == "desc" {
			return *di > *dj
		}
		return *di < *dj
	})
}

// buildPagination derives the page descriptor from the datastore-filter total.
func buildPagination(page, limit int, total int64) dto.Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return dto.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
