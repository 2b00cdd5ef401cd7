package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/model"
)

// BrandService serves the brand catalog.
type BrandService struct {
	db *gorm.DB
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

// List returns brands, optionally narrowed by category and name substring.
func (s *BrandService) List(ctx context.Context, category, search string) ([]model.Brand, error) {
	query := s.db.WithContext(ctx).Model(&model.Brand{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	var brands []model.Brand
	err := query.Order("name ASC").Find(&brands).Error
	return brands, err
}

// GetByID returns one brand or ErrNotFound.
func (s *BrandService) GetByID(ctx context.Context, id int64) (*model.Brand, error) {
	var brand model.Brand
	err := s.db.WithContext(ctx).First(&brand, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// Create adds a brand to the catalog. Admin only; duplicate names surface as
// a uniqueness conflict rather than a server error.
func (s *BrandService) Create(ctx context.Context, principal *Principal, form dto.BrandForm) (*model.Brand, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	brand := &model.Brand{Name: form.Name, Category: form.Category}
	err := s.db.WithContext(ctx).Create(brand).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrBrandNameTaken
	}
	if err != nil {
		return nil, err
	}
	return brand, nil
}
