package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/addresses/cities/internal/domain"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

// bindErrorResponse answers a failed ShouldBindJSON: field errors are listed,
// anything else (malformed JSON, wrong types) is a plain invalid request.
func bindErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		errorResponse(c, http.StatusBadRequest, InvalidRequestCode)
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
		Errors:       out,
	})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum number of characters is %v", value)
	case "max":
		return fmt.Sprintf("Maximum number of characters is %v", value)
	}
	return tag
}

// translateErrors turns errors attached with c.Error into responses when the
// handler itself wrote nothing.
func (h *Handler) translateErrors(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	switch {
	case errors.Is(err, domain.ErrNotFound):
		errorResponse(c, http.StatusNotFound, CityNotFoundCode)
	case errors.Is(err, domain.ErrDuplicateEntry):
		errorResponse(c, http.StatusConflict, CityAlreadyExistsCode)
	default:
		h.logger.Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
		)
		errorResponse(c, http.StatusInternalServerError, InternalErrorCode)
	}
}
