package model

import "time"

// Review is one user's rating of one shop. The (user, shop) pair is unique;
// a second submission overwrites the row instead of creating a duplicate.
type Review struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_review_user_shop;not null" json:"userId"`
	ShopID    int64     `gorm:"column:shop_id;uniqueIndex:idx_review_user_shop;index;not null" json:"shopId"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Comment   string    `gorm:"column:comment;size:1000" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Review) TableName() string { return "reviews" }
