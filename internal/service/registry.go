package service

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JMirval/watchmapper-sub001/internal/observability"
)

// Registry aggregates every business service for injection into handlers.
type Registry struct {
	Auth             *AuthService
	User             *UserService
	Shop             *ShopService
	Brand            *BrandService
	Review           *ReviewService
	Favorite         *FavoriteService
	CacheInvalidator *CacheInvalidator
}

// RegistryDeps bundles the shared infrastructure handed to NewRegistry.
type RegistryDeps struct {
	DB                    *gorm.DB
	Redis                 *redis.Client
	CacheInvalidateWriter *kafka.Writer
	CacheInvalidateReader *kafka.Reader
	SessionTTL            time.Duration
	BcryptCost            int
	ShopCacheTTL          time.Duration
	DiscoveryMetrics      *observability.DiscoveryMetrics
	Logger                *zap.Logger
}

// NewRegistry builds all services on the shared DB, Redis and Kafka handles.
func NewRegistry(deps RegistryDeps) *Registry {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		Auth:             NewAuthService(deps.DB, deps.Redis, deps.SessionTTL, deps.BcryptCost, log),
		User:             NewUserService(deps.DB),
		Shop:             NewShopService(deps.DB, deps.Redis, deps.ShopCacheTTL, deps.DiscoveryMetrics, log),
		Brand:            NewBrandService(deps.DB),
		Review:           NewReviewService(deps.DB, deps.CacheInvalidateWriter, log),
		Favorite:         NewFavoriteService(deps.DB),
		CacheInvalidator: NewCacheInvalidator(deps.CacheInvalidateReader, deps.Redis, log),
	}
}
