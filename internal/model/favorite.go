package model

import "time"

// UserBrand is a brand favorite join record carrying its own timestamp.
type UserBrand struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_user_brand;not null" json:"userId"`
	BrandID   int64     `gorm:"column:brand_id;uniqueIndex:idx_user_brand;not null" json:"brandId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"favoritedAt"`

	Brand Brand `gorm:"foreignKey:BrandID" json:"-"`
}

func (UserBrand) TableName() string { return "user_brands" }

// UserShop is a shop favorite join record carrying its own timestamp.
type UserShop struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_user_shop;not null" json:"userId"`
	ShopID    int64     `gorm:"column:shop_id;uniqueIndex:idx_user_shop;not null" json:"shopId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"favoritedAt"`

	Shop Shop `gorm:"foreignKey:ShopID" json:"-"`
}

func (UserShop) TableName() string { return "user_shops" }
