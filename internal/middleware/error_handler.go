package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/dto"
	"github.com/FindTheRhythm/stellar-burgers/internal/i18n"
	"github.com/FindTheRhythm/stellar-burgers/internal/logger"
)

// ErrorHandler returns a middleware that logs gin context errors and answers
// for handlers that recorded an error without writing a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		log := logger.WithComponent("http")
		event := log.Error()
		if c.Writer.Written() && c.Writer.Status() < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		status, key, code := http.StatusInternalServerError, i18n.ErrKeyInternalError, dto.ErrCodeInternal
		var validationErr *dto.ValidationError
		if errors.As(err.Err, &validationErr) {
			status, key, code = http.StatusBadRequest, i18n.ErrKeyInvalidRequest, dto.ErrCodeInvalidRequest
		}
		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		c.JSON(status, dto.NewError(code, message).WithRequestID(requestID))
	}
}
