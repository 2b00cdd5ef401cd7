package dto

import (
	"time"

	"github.com/JMirval/watchmapper-sub001/internal/model"
)

// FindShopsQuery carries every discovery criterion explicitly; there is no
// ambient filter state. Validation happens at the binding layer, before the
// service runs.
type FindShopsQuery struct {
	Search      string   `form:"search" binding:"omitempty,max=255"`
	Type        string   `form:"type" binding:"omitempty,oneof=repair reseller"`
	BrandID     *int64   `form:"brandId" binding:"omitempty,min=1"`
	MinRating   *int     `form:"minRating" binding:"omitempty,min=1,max=5"`
	MaxDistance *float64 `form:"maxDistance" binding:"omitempty,gt=0"`
	UserLat     *float64 `form:"userLat" binding:"omitempty,min=-90,max=90"`
	UserLng     *float64 `form:"userLng" binding:"omitempty,min=-180,max=180"`
	Page        int      `form:"page,default=1" binding:"min=1"`
	Limit       int      `form:"limit,default=20" binding:"min=1,max=50"`
	SortBy      string   `form:"sortBy,default=name" binding:"oneof=name rating distance createdAt"`
	SortOrder   string   `form:"sortOrder,default=asc" binding:"oneof=asc desc"`
}

// HasViewerLocation reports whether both viewer coordinates were supplied.
func (q *FindShopsQuery) HasViewerLocation() bool {
	return q.UserLat != nil && q.UserLng != nil
}

// ShopResult is a shop enriched with computed fields. Distance is nil when the
// viewer location is unknown; it is never zero-for-unknown.
type ShopResult struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Type          model.ShopType `json:"type"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Address       string         `json:"address,omitempty"`
	Brands        []model.Brand  `json:"brands"`
	ReviewCount   int            `json:"reviewCount"`
	AverageRating float64        `json:"averageRating"`
	Distance      *float64       `json:"distance,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// Pagination describes the returned page. Total counts the datastore filter
// only, not the post-fetch distance/rating filters.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// FindShopsResult is the discovery response payload.
type FindShopsResult struct {
	Shops      []ShopResult `json:"shops"`
	Pagination Pagination   `json:"pagination"`
}

// ShopDetails is the shop detail response payload.
type ShopDetails struct {
	Shop          *model.Shop `json:"shop"`
	Reviews       []ReviewDTO `json:"reviews"`
	AverageRating float64     `json:"averageRating"`
	ReviewCount   int         `json:"reviewCount"`
}

// ShopMapEntry is the unfiltered projection used by the map view.
type ShopMapEntry struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Type          model.ShopType `json:"type"`
	Brands        []string       `json:"brands"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Address       string         `json:"address,omitempty"`
	AverageRating float64        `json:"averageRating"`
	ReviewCount   int            `json:"reviewCount"`
}

// FavoriteStatus is the toggle response payload.
type FavoriteStatus struct {
	Favorited bool `json:"favorited"`
}

// FavoritesDTO lists the caller's favorites with favorited-at timestamps.
type FavoritesDTO struct {
	Brands []FavoriteBrandDTO `json:"brands"`
	Shops  []FavoriteShopDTO  `json:"shops"`
}

type FavoriteBrandDTO struct {
	Brand       model.Brand `json:"brand"`
	FavoritedAt time.Time   `json:"favoritedAt"`
}

type FavoriteShopDTO struct {
	Shop        model.Shop `json:"shop"`
	FavoritedAt time.Time  `json:"favoritedAt"`
}
