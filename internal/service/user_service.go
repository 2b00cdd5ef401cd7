package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/model"
)

// UserService serves profile reads and writes for the authenticated user.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetProfile loads the caller's full profile including preferences.
func (s *UserService) GetProfile(ctx context.Context, principal *Principal) (*model.User, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	var user model.User
	err := s.db.WithContext(ctx).Preload("Preferences").First(&user, principal.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Preferences == nil {
		user.Preferences = &model.UserPreferences{UserID: user.ID, Locale: "en", DistanceUnit: "km", DefaultRadiusKm: 50, EmailUpdates: true}
	}
	return &user, nil
}

// UpdateProfile applies the provided profile fields to the caller's own row.
func (s *UserService) UpdateProfile(ctx context.Context, principal *Principal, form dto.UpdateProfileForm) (*model.User, error) {
	user, err := s.GetProfile(ctx, principal)
	if err != nil {
		return nil, err
	}
	if form.Name != nil {
		user.Name = *form.Name
	}
	if form.Bio != nil {
		user.Bio = *form.Bio
	}
	if form.Location != nil {
		user.Location = *form.Location
	}
	if form.Phone != nil {
		user.Phone = *form.Phone
	}
	if form.AvatarURL != nil {
		user.AvatarURL = *form.AvatarURL
	}
	if err := s.db.WithContext(ctx).Omit("Preferences").Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePreferences replaces the structured preferences sub-record.
func (s *UserService) UpdatePreferences(ctx context.Context, principal *Principal, form dto.PreferencesForm) (*model.UserPreferences, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	prefs := &model.UserPreferences{
		UserID:          principal.ID,
		Locale:          form.Locale,
		DistanceUnit:    form.DistanceUnit,
		DefaultRadiusKm: form.DefaultRadiusKm,
		EmailUpdates:    form.EmailUpdates,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"locale", "distance_unit", "default_radius_km", "email_updates"}),
	}).Create(prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}
