package model

import "time"

// Role is the user permission level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User owns favorites, reviews and a preferences sub-record. Email is stored
// lowercased; normalization happens at the input boundary.
type User struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:100;not null" json:"-"`
	Name         string    `gorm:"column:name;size:100" json:"name"`
	Bio          string    `gorm:"column:bio;type:text" json:"bio"`
	Location     string    `gorm:"column:location;size:255" json:"location"`
	Phone        string    `gorm:"column:phone;size:40" json:"phone"`
	AvatarURL    string    `gorm:"column:avatar_url;size:512" json:"avatarUrl"`
	Role         Role      `gorm:"column:role;size:20;default:user" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Preferences *UserPreferences `gorm:"foreignKey:UserID" json:"preferences,omitempty"`
	Reviews     []Review         `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string { return "users" }

// UserPreferences is the structured replacement for the legacy serialized
// preference blob: each setting is a typed column with its own default.
type UserPreferences struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID          int64     `gorm:"column:user_id;uniqueIndex;not null" json:"-"`
	Locale          string    `gorm:"column:locale;size:10;default:en" json:"locale"`
	DistanceUnit    string    `gorm:"column:distance_unit;size:10;default:km" json:"distanceUnit"`
	DefaultRadiusKm float64   `gorm:"column:default_radius_km;default:50" json:"defaultRadiusKm"`
	EmailUpdates    bool      `gorm:"column:email_updates;default:true" json:"emailUpdates"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (UserPreferences) TableName() string { return "user_preferences" }
