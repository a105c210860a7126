// Package middleware provides the gin middleware of the state service HTTP surface.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FindTheRhythm/stellar-burgers/internal/logger"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// maxRequestIDLength caps client supplied ids before they reach logs.
	maxRequestIDLength = 128
)

// ContextKey namespaces values stored on the gin context.
type ContextKey string

// RequestIDKey is the gin context key of the request id.
const RequestIDKey ContextKey = "request_id"

// RequestID tags each request with an id. A short enough X-Request-ID from
// the client is kept, otherwise a UUID v4 is generated. The id is echoed in
// the response and attached to the request context, so store and upstream
// logs started by the request carry it too.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), requestID))
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" outside it.
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(string(RequestIDKey)); id != "" {
		return id
	}
	if c.Request != nil {
		return logger.RequestIDFromContext(c.Request.Context())
	}
	return ""
}
