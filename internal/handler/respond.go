package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/JMirval/watchmapper-sub001/internal/dto"
	"github.com/JMirval/watchmapper-sub001/internal/i18n"
	"github.com/JMirval/watchmapper-sub001/internal/middleware"
	"github.com/JMirval/watchmapper-sub001/internal/service"
)

// respondError maps service errors onto the Result envelope. Expected errors
// get their localized message; everything else is logged and hidden behind a
// generic failure.
func respondError(c *gin.Context, err error, log *zap.Logger) {
	locale := middleware.LocaleFromContext(c)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(i18n.T(locale, "not_found")))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Fail(i18n.T(locale, "invalid_credentials")))
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.Fail(i18n.T(locale, "unauthenticated")))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(i18n.T(locale, "forbidden")))
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.FailWithFields(
			i18n.T(locale, "invalid_request"),
			map[string]string{"email": i18n.T(locale, "email_taken")},
		))
	case errors.Is(err, service.ErrBrandNameTaken):
		c.JSON(http.StatusConflict, dto.FailWithFields(
			i18n.T(locale, "invalid_request"),
			map[string]string{"name": i18n.T(locale, "brand_name_taken")},
		))
	default:
		log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.Fail(i18n.T(locale, "server_error")))
	}
}

// respondBindingError turns validator failures into per-field messages.
func respondBindingError(c *gin.Context, err error) {
	locale := middleware.LocaleFromContext(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		c.JSON(http.StatusBadRequest, dto.FailWithFields(i18n.T(locale, "invalid_request"), fields))
		return
	}
	c.JSON(http.StatusBadRequest, dto.Fail(i18n.T(locale, "invalid_request")))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		return "is below the allowed minimum (" + fe.Param() + ")"
	case "max", "lte":
		return "exceeds the allowed maximum (" + fe.Param() + ")"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
