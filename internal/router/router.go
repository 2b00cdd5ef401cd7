package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JMirval/watchmapper-sub001/internal/handler"
	"github.com/JMirval/watchmapper-sub001/internal/service"
)

// RegisterRoutes mounts every API handler under /api.
func RegisterRoutes(engine *gin.Engine, services *service.Registry, log *zap.Logger) {
	api := engine.Group("/api")

	handler.NewAuthHandler(services.Auth, log).RegisterRoutes(api)
	handler.NewUserHandler(services.User, services.Favorite, log).RegisterRoutes(api)
	handler.NewShopHandler(services.Shop, services.Review, services.Favorite, log).RegisterRoutes(api)
	handler.NewBrandHandler(services.Brand, services.Favorite, log).RegisterRoutes(api)
}
