package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/JMirval/watchmapper-sub001/internal/i18n"
)

const localeContextKey = "locale"

// LocaleMiddleware negotiates the response locale from Accept-Language.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localeContextKey, i18n.Negotiate(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// LocaleFromContext returns the negotiated locale, defaulting to English.
func LocaleFromContext(c *gin.Context) string {
	if v, ok := c.Get(localeContextKey); ok {
		if locale, ok := v.(string); ok {
			return locale
		}
	}
	return "en"
}
