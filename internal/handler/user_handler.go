package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/middleware"
	"github.com/JMirval/watchmapper-sub001/internal/service"
)

// UserHandler exposes the authenticated user's profile and favorites.
type UserHandler struct {
	users     *service.UserService
	favorites *service.FavoriteService
	log       *zap.Logger
}

func NewUserHandler(users *service.UserService, favorites *service.FavoriteService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, favorites: favorites, log: log}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/users", middleware.RequireAuth())
	group.GET("/me", h.me)
	group.PUT("/me", h.updateProfile)
	group.PUT("/me/preferences", h.updatePreferences)
	group.GET("/me/favorites", h.favoritesList)
}

func (h *UserHandler) me(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	user, err := h.users.GetProfile(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(user))
}

func (h *UserHandler) updateProfile(c *gin.Context) {
	var form dto.UpdateProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindingError(c, err)
		return
	}
	principal, _ := middleware.GetPrincipal(c)
	user, err := h.users.UpdateProfile(c.Request.Context(), principal, form)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(user))
}

func (h *UserHandler) updatePreferences(c *gin.Context) {
	var form dto.PreferencesForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindingError(c, err)
		return
	}
	principal, _ := middleware.GetPrincipal(c)
	prefs, err := h.users.UpdatePreferences(c.Request.Context(), principal, form)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(prefs))
}

func (h *UserHandler) favoritesList(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	favorites, err := h.favorites.ListForUser(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(favorites))
}
