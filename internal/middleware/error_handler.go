package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/i18n"
)

// ErrorHandler converts panics into a generic JSON failure without leaking
// internals to the caller.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", zap.Any("error", rec))
				locale := LocaleFromContext(ctx)
				ctx.JSON(http.StatusInternalServerError, dto.Fail(i18n.T(locale, "server_error")))
				ctx.Abort()
			}
		}()
		ctx.Next()
	}
}
