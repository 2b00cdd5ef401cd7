package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/middleware"
	"github.com/JMirval/watchmapper-sub001/internal/service"
)

// BrandHandler exposes the brand catalog and brand favorites.
type BrandHandler struct {
	brands    *service.BrandService
	favorites *service.FavoriteService
	log       *zap.Logger
}

func NewBrandHandler(brands *service.BrandService, favorites *service.FavoriteService, log *zap.Logger) *BrandHandler {
	return &BrandHandler{brands: brands, favorites: favorites, log: log}
}

func (h *BrandHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/brands")
	group.GET("", h.listBrands)
	group.GET("/:id", h.brandByID)
	group.POST("/:id/favorite", middleware.RequireAuth(), h.toggleFavorite)
	group.POST("", middleware.RequireAdmin(), h.createBrand)
}

func (h *BrandHandler) listBrands(c *gin.Context) {
	brands, err := h.brands.List(c.Request.Context(), c.Query("category"), c.Query("search"))
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(brands))
}

func (h *BrandHandler) brandByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	brand, err := h.brands.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(brand))
}

func (h *BrandHandler) toggleFavorite(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	principal, _ := middleware.GetPrincipal(c)
	status, err := h.favorites.ToggleBrand(c.Request.Context(), principal, id)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(status))
}

func (h *BrandHandler) createBrand(c *gin.Context) {
	var form dto.BrandForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindingError(c, err)
		return
	}
	principal, _ := middleware.GetPrincipal(c)
	brand, err := h.brands.Create(c.Request.Context(), principal, form)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusCreated, dto.OkWithData(brand))
}
