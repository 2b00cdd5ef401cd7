package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/model"
)

// FavoriteService toggles brand/shop favorites and lists them. Toggling is
// strict: a call flips the state, there is no separate add or remove.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// ToggleBrand flips the (user, brand) favorite and reports the new state.
func (s *FavoriteService) ToggleBrand(ctx context.Context, principal *Principal, brandID int64) (*dto.FavoriteStatus, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if err := s.ensureExists(ctx, &model.Brand{}, brandID); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).
		Where("user_id = ? AND brand_id = ?", principal.ID, brandID).
		Delete(&model.UserBrand{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return &dto.FavoriteStatus{Favorited: false}, nil
	}

	err := s.db.WithContext(ctx).Create(&model.UserBrand{UserID: principal.ID, BrandID: brandID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Concurrent toggle created it first; the favorite exists either way.
		return &dto.FavoriteStatus{Favorited: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteStatus{Favorited: true}, nil
}

// ToggleShop flips the (user, shop) favorite and reports the new state.
func (s *FavoriteService) ToggleShop(ctx context.Context, principal *Principal, shopID int64) (*dto.FavoriteStatus, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if err := s.ensureExists(ctx, &model.Shop{}, shopID); err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).
		Where("user_id = ? AND shop_id = ?", principal.ID, shopID).
		Delete(&model.UserShop{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected > 0 {
		return &dto.FavoriteStatus{Favorited: false}, nil
	}

	err := s.db.WithContext(ctx).Create(&model.UserShop{UserID: principal.ID, ShopID: shopID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &dto.FavoriteStatus{Favorited: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteStatus{Favorited: true}, nil
}

// ListForUser returns the caller's favorites with favorited-at timestamps.
func (s *FavoriteService) ListForUser(ctx context.Context, principal *Principal) (*dto.FavoritesDTO, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	var brandJoins []model.UserBrand
	err := s.db.WithContext(ctx).
		Where("user_id = ?", principal.ID).
		Order("created_at DESC").
		Preload("Brand").
		Find(&brandJoins).Error
	if err != nil {
		return nil, err
	}
	var shopJoins []model.UserShop
	err = s.db.WithContext(ctx).
		Where("user_id = ?", principal.ID).
		Order("created_at DESC").
		Preload("Shop").
		Find(&shopJoins).Error
	if err != nil {
		return nil, err
	}

	out := &dto.FavoritesDTO{
		Brands: make([]dto.FavoriteBrandDTO, 0, len(brandJoins)),
		Shops:  make([]dto.FavoriteShopDTO, 0, len(shopJoins)),
	}
	for _, j := range brandJoins {
		out.Brands = append(out.Brands, dto.FavoriteBrandDTO{Brand: j.Brand, FavoritedAt: j.CreatedAt})
	}
	for _, j := range shopJoins {
		out.Shops = append(out.Shops, dto.FavoriteShopDTO{Shop: j.Shop, FavoritedAt: j.CreatedAt})
	}
	return out, nil
}

func (s *FavoriteService) ensureExists(ctx context.Context, target interface{}, id int64) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(target).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
