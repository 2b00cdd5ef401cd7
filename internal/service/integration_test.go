package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/model"
)

// openTestDB connects to the database named by WATCHMAPPER_TEST_DSN.
// DB-backed tests skip when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("WATCHMAPPER_TEST_DSN")
	if dsn == "" {
		t.Skip("WATCHMAPPER_TEST_DSN not set")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.UserPreferences{}, &model.Brand{}, &model.Shop{},
		&model.Review{}, &model.UserBrand{}, &model.UserShop{},
	))
	return db
}

// openTestRedis connects to the instance named by WATCHMAPPER_TEST_REDIS.
// Tests needing Redis skip when the variable is unset.
func openTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("WATCHMAPPER_TEST_REDIS")
	if addr == "" {
		t.Skip("WATCHMAPPER_TEST_REDIS not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })
	return client
}

func createTestUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{
		Email:        fmt.Sprintf("tester-%d@watchmapper.test", time.Now().UnixNano()),
		PasswordHash: "x",
		Name:         "tester",
		Role:         model.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	t.Cleanup(func() { db.Unscoped().Delete(user) })
	return user
}

func createTestShop(t *testing.T, db *gorm.DB) *model.Shop {
	t.Helper()
	shop := &model.Shop{
		Name: fmt.Sprintf("test shop %d", time.Now().UnixNano()),
		Type: model.ShopTypeRepair,
		Lat:  45.75,
		Lng:  4.85,
	}
	require.NoError(t, db.Create(shop).Error)
	t.Cleanup(func() {
		db.Where("shop_id = ?", shop.ID).Delete(&model.Review{})
		db.Where("shop_id = ?", shop.ID).Delete(&model.UserShop{})
		db.Unscoped().Delete(shop)
	})
	return shop
}

// A second signup with the same email, whatever its casing, is a conflict and
// leaves a single user row behind.
func TestSignupDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	rdb := openTestRedis(t)

	svc := NewAuthService(db, rdb, time.Minute, 0, zap.NewNop())
	email := fmt.Sprintf("dup-%d@watchmapper.test", time.Now().UnixNano())
	t.Cleanup(func() {
		var user model.User
		if db.Where("email = ?", email).First(&user).Error == nil {
			db.Where("user_id = ?", user.ID).Delete(&model.UserPreferences{})
			db.Unscoped().Delete(&user)
		}
	})

	_, err := svc.Signup(ctx, dto.SignupForm{Email: email, Password: "longenough"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, dto.SignupForm{Email: strings.ToUpper(email), Password: "longenough"})
	require.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

// A second review from the same user updates the row instead of adding one.
func TestReviewUpsertDoesNotDuplicate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db)
	shop := createTestShop(t, db)

	svc := NewReviewService(db, nil, zap.NewNop())
	principal := &Principal{ID: user.ID, Role: model.RoleUser}

	first, err := svc.Submit(ctx, principal, shop.ID, dto.ReviewForm{Rating: 3, Comment: "fine"})
	require.NoError(t, err)

	second, err := svc.Submit(ctx, principal, shop.ID, dto.ReviewForm{Rating: 5, Comment: "great after service"})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, 5, second.Rating)

	var count int64
	require.NoError(t, db.Model(&model.Review{}).Where("shop_id = ?", shop.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestReviewSubmitUnknownShop(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	svc := NewReviewService(db, nil, zap.NewNop())

	_, err := svc.Submit(context.Background(), &Principal{ID: user.ID}, 1<<60, dto.ReviewForm{Rating: 4})
	require.ErrorIs(t, err, ErrNotFound)
}

// Double-toggling a favorite returns to the original state.
func TestFavoriteShopDoubleToggle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, db)
	shop := createTestShop(t, db)

	svc := NewFavoriteService(db)
	principal := &Principal{ID: user.ID, Role: model.RoleUser}

	status, err := svc.ToggleShop(ctx, principal, shop.ID)
	require.NoError(t, err)
	require.True(t, status.Favorited)

	status, err = svc.ToggleShop(ctx, principal, shop.ID)
	require.NoError(t, err)
	require.False(t, status.Favorited)

	var count int64
	require.NoError(t, db.Model(&model.UserShop{}).Where("user_id = ?", user.ID).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestFavoriteUnknownTarget(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db)
	svc := NewFavoriteService(db)
	principal := &Principal{ID: user.ID}

	_, err := svc.ToggleBrand(context.Background(), principal, 1<<60)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.ToggleShop(context.Background(), principal, 1<<60)
	require.ErrorIs(t, err, ErrNotFound)
}
