package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/dto"
	"github.com/FindTheRhythm/stellar-burgers/internal/i18n"
)

// RequireSession returns a middleware that rejects requests with 401 while
// authenticated reports false.
func RequireSession(authenticated func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticated != nil && authenticated() {
			c.Next()
			return
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeySessionRequired, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
	}
}
