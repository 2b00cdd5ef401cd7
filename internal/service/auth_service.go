package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/model"
	"github.com/JMirval/watchmapper-sub001/internal/utils"
)

// Principal is the authenticated caller, threaded explicitly into every
// mutating operation instead of being looked up from ambient context.
type Principal struct {
	ID    int64
	Email string
	Name  string
	Role  model.Role
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == model.RoleAdmin
}

// AuthService handles signup, login and the Redis-backed session store.
type AuthService struct {
	db         *gorm.DB
	rdb        *redis.Client
	sessionTTL time.Duration
	bcryptCost int
	log        *zap.Logger
}

func NewAuthService(db *gorm.DB, rdb *redis.Client, sessionTTL time.Duration, bcryptCost int, log *zap.Logger) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{db: db, rdb: rdb, sessionTTL: sessionTTL, bcryptCost: bcryptCost, log: log}
}

// NormalizeEmail lowercases and trims an email at the input boundary.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new user and opens a session. A duplicate email, whether
// detected up front or lost to a concurrent insert, surfaces as ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, form dto.SignupForm) (*dto.SessionDTO, error) {
	email := NormalizeEmail(form.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(form.Name)
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}
	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         model.RoleUser,
		Preferences:  &model.UserPreferences{},
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return s.openSession(ctx, user)
}

// Login verifies credentials and opens a session. The caller gets the same
// ErrInvalidCredentials whether the user is unknown or the password is wrong.
func (s *AuthService) Login(ctx context.Context, form dto.LoginForm) (*dto.SessionDTO, error) {
	email := NormalizeEmail(form.Email)

	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Debug("login for unknown email", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		s.log.Debug("login password mismatch", zap.Int64("userId", user.ID))
		return nil, ErrInvalidCredentials
	}
	return s.openSession(ctx, &user)
}

// Logout destroys the session for the given token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, utils.SESSION_KEY_PREFIX+token).Err()
}

// LoadSession resolves a token to its principal and refreshes the TTL.
// It returns (nil, nil) for missing or expired sessions.
func (s *AuthService) LoadSession(ctx context.Context, token string) (*Principal, error) {
	key := utils.SESSION_KEY_PREFIX + token
	data, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	id, err := strconv.ParseInt(data["id"], 10, 64)
	if err != nil {
		return nil, nil
	}
	s.rdb.Expire(ctx, key, s.sessionTTL)
	return &Principal{
		ID:    id,
		Email: data["email"],
		Name:  data["name"],
		Role:  model.Role(data["role"]),
	}, nil
}

func (s *AuthService) openSession(ctx context.Context, user *model.User) (*dto.SessionDTO, error) {
	token := uuid.NewString()
	key := utils.SESSION_KEY_PREFIX + token
	fields := map[string]interface{}{
		"id":    strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
	}
	if err := s.rdb.HSet(ctx, key, fields).Err(); err != nil {
		return nil, err
	}
	if err := s.rdb.Expire(ctx, key, s.sessionTTL).Err(); err != nil {
		return nil, err
	}
	return &dto.SessionDTO{Token: token, User: dto.ToUserDTO(user)}, nil
}
