package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/model"
)

// ShopCacheEvent asks the invalidation consumer to drop cached entries for a
// shop whose review set changed.
type ShopCacheEvent struct {
	ShopID int64 `json:"shopId"`
}

// ReviewService upserts reviews and emits cache-invalidation events.
type ReviewService struct {
	db       *gorm.DB
	producer *kafka.Writer
	log      *zap.Logger
}

func NewReviewService(db *gorm.DB, producer *kafka.Writer, log *zap.Logger) *ReviewService {
	return &ReviewService{db: db, producer: producer, log: log}
}

// Submit creates or updates the caller's review for a shop. A user holds at
// most one review per shop: a second submission overwrites rating and comment
// while keeping the row identity and creation timestamp.
func (s *ReviewService) Submit(ctx context.Context, principal *Principal, shopID int64, form dto.ReviewForm) (*model.Review, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	var exists int64
	if err := s.db.WithContext(ctx).Model(&model.Shop{}).Where("id = ?", shopID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrNotFound
	}

	review, err := s.upsert(ctx, principal.ID, shopID, form)
	if err != nil {
		return nil, err
	}
	s.publishInvalidation(ctx, shopID)
	return review, nil
}

func (s *ReviewService) upsert(ctx context.Context, userID, shopID int64, form dto.ReviewForm) (*model.Review, error) {
	var review model.Review
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND shop_id = ?", userID, shopID).
		First(&review).Error
	switch {
	case err == nil:
		review.Rating = form.Rating
		review.Comment = form.Comment
		if err := s.db.WithContext(ctx).Save(&review).Error; err != nil {
			return nil, err
		}
		return &review, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = model.Review{
			UserID:  userID,
			ShopID:  shopID,
			Rating:  form.Rating,
			Comment: form.Comment,
		}
		createErr := s.db.WithContext(ctx).Create(&review).Error
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			// Lost a race against a concurrent first submission from the
			// same user; the unique (user, shop) key makes this an update.
			return s.upsert(ctx, userID, shopID, form)
		}
		if createErr != nil {
			return nil, createErr
		}
		return &review, nil
	default:
		return nil, err
	}
}

// publishInvalidation is best-effort: a failed publish leaves a stale cache
// entry that expires on its own TTL.
func (s *ReviewService) publishInvalidation(ctx context.Context, shopID int64) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(ShopCacheEvent{ShopID: shopID})
	if err != nil {
		return
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(shopID, 10)),
		Value: payload,
	}
	if err := s.producer.WriteMessages(ctx, msg); err != nil {
		s.log.Warn("cache invalidation publish failed", zap.Int64("shopId", shopID), zap.Error(err))
	}
}
