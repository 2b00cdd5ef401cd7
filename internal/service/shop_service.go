package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/model"
	"github.com/JMirval/watchmapper-sub001/internal/observability"
	"github.com/JMirval/watchmapper-sub001/internal/utils"
)

// ShopService answers discovery queries and owns the shop catalog.
type ShopService struct {
	db       *gorm.DB
	rdb      *redis.Client
	cacheTTL time.Duration
	metrics  *observability.DiscoveryMetrics
	log      *zap.Logger
}

func NewShopService(db *gorm.DB, rdb *redis.Client, cacheTTL time.Duration, metrics *observability.DiscoveryMetrics, log *zap.Logger) *ShopService {
	return &ShopService{db: db, rdb: rdb, cacheTTL: cacheTTL, metrics: metrics, log: log}
}

// FindShops runs the discovery pipeline: datastore filter/sort/paginate,
// compute derived fields, post-fetch filters, optional in-memory distance
// sort, and a pagination block counted over the datastore filter only.
func (s *ShopService) FindShops(ctx context.Context, q *dto.FindShopsQuery) (*dto.FindShopsResult, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if q.Search != "" {
			like := "%" + q.Search + "%"
			db = db.Where(
				"shops.name LIKE ? OR shops.type LIKE ? OR EXISTS (SELECT 1 FROM shop_brands sb JOIN brands b ON b.id = sb.brand_id WHERE sb.shop_id = shops.id AND b.name LIKE ?)",
				like, like, like,
			)
		}
		if q.Type != "" {
			db = db.Where("shops.type = ?", q.Type)
		}
		if q.BrandID != nil {
			db = db.Where("EXISTS (SELECT 1 FROM shop_brands sb2 WHERE sb2.shop_id = shops.id AND sb2.brand_id = ?)", *q.BrandID)
		}
		return db
	}

	var total int64
	if err := filter(s.db.WithContext(ctx).Model(&model.Shop{})).Count(&total).Error; err != nil {
		return nil, err
	}

	var shops []model.Shop
	err := filter(s.db.WithContext(ctx).Model(&model.Shop{})).
		Order(orderClause(q.SortBy, q.SortOrder)).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Preload("Brands").
		Preload("Reviews").
		Find(&shops).Error
	if err != nil {
		return nil, err
	}

	results := make([]dto.ShopResult, 0, len(shops))
	for i := range shops {
		results = append(results, buildShopResult(&shops[i], q))
	}
	results = applyPostFilters(results, q)
	if q.SortBy == "distance" && q.HasViewerLocation() {
		sortByDistance(results, q.SortOrder)
	}

	if s.metrics != nil {
		s.metrics.ObserveSearch(q.SortBy, len(results))
	}
	return &dto.FindShopsResult{
		Shops:      results,
		Pagination: buildPagination(q.Page, q.Limit, total),
	}, nil
}

// orderClause maps sortBy/sortOrder onto the datastore sort. The distance
// sort happens in memory after fetch, so its datastore order is arbitrary.
func orderClause(sortBy, sortOrder string) string {
	dir := "ASC"
	if sortOrder == "desc" {
		dir = "DESC"
	}
	switch sortBy {
	case "rating":
		return fmt.Sprintf("(SELECT COALESCE(AVG(r.rating), 0) FROM reviews r WHERE r.shop_id = shops.id) %s", dir)
	case "createdAt":
		return "shops.created_at " + dir
	case "distance":
		return "shops.id ASC"
	default:
		return "shops.name " + dir
	}
}

// GetDetails returns a shop with its reviews newest-first, serving from the
// Redis cache when possible. Review writes invalidate the entry via Kafka.
func (s *ShopService) GetDetails(ctx context.Context, shopID int64) (*dto.ShopDetails, error) {
	cacheKey := utils.CACHE_SHOP_KEY + strconv.FormatInt(shopID, 10)
	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var details dto.ShopDetails
		if err := json.Unmarshal([]byte(cached), &details); err == nil {
			return &details, nil
		}
		s.rdb.Del(ctx, cacheKey)
	}

	var shop model.Shop
	err := s.db.WithContext(ctx).Preload("Brands").First(&shop, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var reviews []model.Review
	err = s.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC, id DESC").
		Preload("User").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	count, average := AggregateRatings(reviews)
	reviewDTOs := make([]dto.ReviewDTO, 0, len(reviews))
	for i := range reviews {
		reviewDTOs = append(reviewDTOs, dto.ToReviewDTO(&reviews[i]))
	}
	details := &dto.ShopDetails{
		Shop:          &shop,
		Reviews:       reviewDTOs,
		AverageRating: average,
		ReviewCount:   count,
	}

	if payload, err := json.Marshal(details); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn("shop detail cache write failed", zap.Int64("shopId", shopID), zap.Error(err))
		}
	}
	return details, nil
}

// ForMap returns the full, unfiltered dataset for map rendering.
func (s *ShopService) ForMap(ctx context.Context) ([]dto.ShopMapEntry, error) {
	if cached, err := s.rdb.Get(ctx, utils.CACHE_SHOP_MAP_KEY).Result(); err == nil {
		var entries []dto.ShopMapEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			return entries, nil
		}
		s.rdb.Del(ctx, utils.CACHE_SHOP_MAP_KEY)
	}

	var shops []model.Shop
	err := s.db.WithContext(ctx).Preload("Brands").Preload("Reviews").Find(&shops).Error
	if err != nil {
		return nil, err
	}

	entries := make([]dto.ShopMapEntry, 0, len(shops))
	for i := range shops {
		shop := &shops[i]
		count, average := AggregateRatings(shop.Reviews)
		brands := make([]string, 0, len(shop.Brands))
		for _, b := range shop.Brands {
			brands = append(brands, b.Name)
		}
		entries = append(entries, dto.ShopMapEntry{
			ID:            shop.ID,
			Name:          shop.Name,
			Type:          shop.Type,
			Brands:        brands,
			Lat:           shop.Lat,
			Lng:           shop.Lng,
			Address:       shop.Address,
			AverageRating: average,
			ReviewCount:   count,
		})
	}

	if payload, err := json.Marshal(entries); err == nil {
		if err := s.rdb.Set(ctx, utils.CACHE_SHOP_MAP_KEY, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn("shop map cache write failed", zap.Error(err))
		}
	}
	return entries, nil
}

// Create adds a shop to the catalog. Admin only.
func (s *ShopService) Create(ctx context.Context, principal *Principal, form dto.ShopForm) (*model.Shop, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	shop := &model.Shop{
		Name:    form.Name,
		Type:    model.ShopType(form.Type),
		Lat:     form.Lat,
		Lng:     form.Lng,
		Address: form.Address,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shop).Error; err != nil {
			return err
		}
		return s.replaceBrands(tx, shop, form.BrandIDs)
	})
	if err != nil {
		return nil, err
	}
	s.rdb.Del(ctx, utils.CACHE_SHOP_MAP_KEY)
	return shop, nil
}

// Update rewrites a shop entry. Admin only.
func (s *ShopService) Update(ctx context.Context, principal *Principal, shopID int64, form dto.ShopForm) (*model.Shop, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	var shop model.Shop
	err := s.db.WithContext(ctx).First(&shop, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	shop.Name = form.Name
	shop.Type = model.ShopType(form.Type)
	shop.Lat = form.Lat
	shop.Lng = form.Lng
	shop.Address = form.Address

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&shop).Error; err != nil {
			return err
		}
		return s.replaceBrands(tx, &shop, form.BrandIDs)
	})
	if err != nil {
		return nil, err
	}
	s.rdb.Del(ctx, utils.CACHE_SHOP_MAP_KEY, utils.CACHE_SHOP_KEY+strconv.FormatInt(shopID, 10))
	return &shop, nil
}

func (s *ShopService) replaceBrands(tx *gorm.DB, shop *model.Shop, brandIDs []int64) error {
	if brandIDs == nil {
		return nil
	}
	var brands []model.Brand
	if len(brandIDs) > 0 {
		if err := tx.Find(&brands, brandIDs).Error; err != nil {
			return err
		}
		if len(brands) != len(brandIDs) {
			return ErrNotFound
		}
	}
	return tx.Model(shop).Association("Brands").Replace(brands)
}
