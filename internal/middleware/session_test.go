package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authenticated  func() bool
		locale         string
		expectedStatus int
		mustContain    string
	}{
		{name: "signed in passes", authenticated: func() bool { return true }, expectedStatus: http.StatusOK, mustContain: "ok"},
		{name: "signed out is rejected", authenticated: func() bool { return false }, expectedStatus: http.StatusUnauthorized, mustContain: "Sign in to continue"},
		{name: "translated rejection", authenticated: func() bool { return false }, locale: "ru", expectedStatus: http.StatusUnauthorized, mustContain: "Войдите"},
		{name: "nil check rejects", expectedStatus: http.StatusUnauthorized, mustContain: "unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), RequireSession(tt.authenticated))
			router.GET("/private", func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.locale != "" {
				req.Header.Set("Accept-Language", tt.locale)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.mustContain)
		})
	}
}
