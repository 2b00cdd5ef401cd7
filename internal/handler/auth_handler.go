package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/middleware"
	"github.com/JMirval/watchmapper-sub001/internal/service"
)

// AuthHandler exposes signup, login and logout.
type AuthHandler struct {
	auth *service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/auth")
	group.POST("/signup", h.signup)
	group.POST("/login", h.login)
	group.POST("/logout", middleware.RequireAuth(), h.logout)
}

func (h *AuthHandler) signup(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindingError(c, err)
		return
	}
	session, err := h.auth.Signup(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusCreated, dto.OkWithData(session))
}

func (h *AuthHandler) login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBindingError(c, err)
		return
	}
	session, err := h.auth.Login(c.Request.Context(), form)
	if err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.OkWithData(session))
}

func (h *AuthHandler) logout(c *gin.Context) {
	token := middleware.GetSessionToken(c)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err, h.log)
		return
	}
	c.JSON(http.StatusOK, dto.Ok())
}
