package model

import "time"

// ShopType is the enumerated shop category.
type ShopType string

const (
	ShopTypeRepair   ShopType = "repair"
	ShopTypeReseller ShopType = "reseller"
)

// Shop is a watch business entry with a geographic position.
type Shop struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Type      ShopType  `gorm:"column:type;size:20;index;not null" json:"type"`
	Lat       float64   `gorm:"column:lat;not null" json:"lat"`
	Lng       float64   `gorm:"column:lng;not null" json:"lng"`
	Address   string    `gorm:"column:address;size:512" json:"address"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Brands  []Brand  `gorm:"many2many:shop_brands" json:"brands,omitempty"`
	Reviews []Review `gorm:"foreignKey:ShopID" json:"-"`
}

func (Shop) TableName() string { return "shops" }
