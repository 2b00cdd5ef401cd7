package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/JMirval/watchmapper-sub001/internal/utils"
)

// CacheInvalidator consumes shop cache events and drops the affected Redis
// entries. Review writes go through Kafka so cached detail and map payloads
// converge without the write path touching the cache directly.
type CacheInvalidator struct {
	reader *kafka.Reader
	rdb    *redis.Client
	log    *zap.Logger
}

func NewCacheInvalidator(reader *kafka.Reader, rdb *redis.Client, log *zap.Logger) *CacheInvalidator {
	return &CacheInvalidator{reader: reader, rdb: rdb, log: log}
}

// Run consumes until the context is cancelled. Malformed messages are logged
// and committed so they do not wedge the partition.
func (c *CacheInvalidator) Run(ctx context.Context) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			c.log.Warn("cache invalidation fetch failed", zap.Error(err))
			continue
		}

		var event ShopCacheEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.log.Warn("cache invalidation message malformed", zap.ByteString("value", msg.Value))
		} else if err := c.invalidate(ctx, event.ShopID); err != nil {
			c.log.Warn("cache invalidation delete failed", zap.Int64("shopId", event.ShopID), zap.Error(err))
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.log.Warn("cache invalidation commit failed", zap.Error(err))
		}
	}
}

func (c *CacheInvalidator) invalidate(ctx context.Context, shopID int64) error {
	return c.rdb.Del(ctx,
		utils.CACHE_SHOP_KEY+strconv.FormatInt(shopID, 10),
		utils.CACHE_SHOP_MAP_KEY,
	).Err()
}
