package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/middleware"
	"github.com/JMirval/watchmapper-sub001/internal/service"
)

// ShopHandler exposes discovery, detail, map, reviews and shop favorites.
type ShopHandler struct {
	shops     *service.ShopService
	reviews   *service.ReviewService
	favorites *service.FavoriteService
	log       *zap.Logger
}

func NewShopHandler(shops *service.ShopService, reviews *service.ReviewService, favorites *service.FavoriteService, log *zap.Logger) *ShopHandler {
	return &ShopHandler{shops: shops, reviews: reviews, favorites: favorites, log: log}
}

func (h *ShopHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/shops")
	group.GET("", h.findShops)
	group.GET("/map", h.shopsForMap)
	group.GET("/:id", h.shopDetails)
	group.POST("/:id/reviews", middleware.RequireAuth(), h.submitReview)
	group.POST("/:id/favorite", middleware.RequireAuth(), h.toggleFavorite)
	group.POST("", middleware.RequireAdmin(), h.createShop)
	group.PUT("/:id", middleware.RequireAdmin(), h.updateShop)
}

func (h *ShopHandler) findShops(c *gin.Context) {
	var query dto.FindShopsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}
	result, err := h.shops.FindShops(c.Request.Context(), &query)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(result))
}

func (h *ShopHandler) shopsForMap(c *gin.Context) {
	entries, err := h.shops.ForMap(c.Request.Context())
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(entries))
}

func (h *ShopHandler) shopDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	details, err := h.shops.GetDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(details))
}

func (h *ShopHandler) submitReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var form dto.ReviewForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindingError(c, err)
		return
	}
	principal, _ := middleware.GetPrincipal(c)
	review, err := h.reviews.Submit(c.Request.Context(), principal, id, form)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(review))
}

func (h *ShopHandler) toggleFavorite(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	principal, _ := middleware.GetPrincipal(c)
	status, err := h.favorites.ToggleShop(c.Request.Context(), principal, id)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(status))
}

func (h *ShopHandler) createShop(c *gin.Context) {
	var form dto.ShopForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindingError(c, err)
		return
	}
	principal, _ := middleware.GetPrincipal(c)
	shop, err := h.shops.Create(c.Request.Context(), principal, form)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusCreated, dto.OkWithData(shop))
}

func (h *ShopHandler) updateShop(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var form dto.ShopForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindingError(c, err)
		return
	}
	principal, _ := middleware.GetPrincipal(c)
	shop, err := h.shops.Update(c.Request.Context(), principal, id, form)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(shop))
}

// parseID reads the :id path param; writes a 400 and returns false when it is
// not a positive integer.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.Fail("invalid id"))
		return 0, false
	}
	return id, true
}
