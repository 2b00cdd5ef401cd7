package dto

import (
	"time"

	"github.com/JMirval/watchmapper-sub001/internal/model"
)

// SignupForm is the signup request body.
type SignupForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"omitempty,max=100"`
}

// LoginForm is the login request body.
type LoginForm struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the public projection of a user.
type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// SessionDTO is returned on successful signup/login.
type SessionDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UpdateProfileForm updates the caller's own profile.
type UpdateProfileForm struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Bio       *string `json:"bio" binding:"omitempty,max=2000"`
	Location  *string `json:"location" binding:"omitempty,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=40"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,max=512,url"`
}

// PreferencesForm updates the structured preferences sub-record.
type PreferencesForm struct {
	Locale          string  `json:"locale" binding:"required,oneof=en fr"`
	DistanceUnit    string  `json:"distanceUnit" binding:"required,oneof=km mi"`
	DefaultRadiusKm float64 `json:"defaultRadiusKm" binding:"required,gt=0,lte=1000"`
	EmailUpdates    bool    `json:"emailUpdates"`
}

// ReviewForm is the review upsert request body.
type ReviewForm struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"omitempty,max=1000"`
}

// ReviewDTO is a review with its author's public profile attached.
type ReviewDTO struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Author    UserDTO   `json:"author"`
}

// ShopForm creates or updates a shop (admin only).
type ShopForm struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Type     string  `json:"type" binding:"required,oneof=repair reseller"`
	Lat      float64 `json:"lat" binding:"min=-90,max=90"`
	Lng      float64 `json:"lng" binding:"min=-180,max=180"`
	Address  string  `json:"address" binding:"omitempty,max=512"`
	BrandIDs []int64 `json:"brandIds" binding:"omitempty,dive,min=1"`
}

// BrandForm creates a brand (admin only).
type BrandForm struct {
	Name     string `json:"name" binding:"required,max=255"`
	Category string `json:"category" binding:"omitempty,max=50"`
}

// ToUserDTO projects a user onto its public fields.
func ToUserDTO(u *model.User) UserDTO {
	if u == nil {
		return UserDTO{}
	}
	return UserDTO{ID: u.ID, Email: u.Email, Name: u.Name, AvatarURL: u.AvatarURL}
}

// ToReviewDTO attaches the author projection to a review.
func ToReviewDTO(r *model.Review) ReviewDTO {
	return ReviewDTO{
		ID:        r.ID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Author:    ToUserDTO(&r.User),
	}
}
