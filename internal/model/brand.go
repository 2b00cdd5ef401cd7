package model

import "time"

// Brand is a watch manufacturer, associated with shops and favoritable.
type Brand struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255;uniqueIndex;not null" json:"name"`
	Category  string    `gorm:"column:category;size:50;index" json:"category"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Shops []Shop `gorm:"many2many:shop_brands" json:"-"`
}

func (Brand) TableName() string { return "brands" }
