package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/i18n"
	"github.com/JMirval/watchmapper-sub001/internal/service"
)

const (
	principalContextKey = "principal"
	tokenContextKey     = "sessionToken"
)

// SessionMiddleware resolves the bearer token into a principal when present.
// It never rejects by itself; RequireAuth/RequireAdmin guard protected routes.
func SessionMiddleware(auth *service.AuthService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}
		principal, err := auth.LoadSession(c.Request.Context(), token)
		if err != nil {
			log.Warn("session lookup failed", zap.Error(err))
			c.Next()
			return
		}
		if principal != nil {
			c.Set(principalContextKey, principal)
			c.Set(tokenContextKey, token)
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 when no valid session accompanies the request.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipal(c); !ok {
			locale := LocaleFromContext(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(i18n.T(locale, "unauthenticated")))
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 for non-admin principals.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			locale := LocaleFromContext(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(i18n.T(locale, "unauthenticated")))
			return
		}
		if !principal.IsAdmin() {
			locale := LocaleFromContext(c)
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail(i18n.T(locale, "forbidden")))
			return
		}
		c.Next()
	}
}

// GetPrincipal reads the authenticated principal from the request context.
func GetPrincipal(c *gin.Context) (*service.Principal, bool) {
	v, exists := c.Get(principalContextKey)
	if !exists {
		return nil, false
	}
	principal, ok := v.(*service.Principal)
	return principal, ok && principal != nil
}

// GetSessionToken returns the raw token the principal was resolved from.
func GetSessionToken(c *gin.Context) string {
	if v, ok := c.Get(tokenContextKey); ok {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return header
	}
	return c.Query("token")
}
