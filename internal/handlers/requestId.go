package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIdHeaderKey  = "X-Request-Id"
	requestIdContextKey = "requestId"
)

// RequestIdMiddleware keeps a caller supplied request id or assigns a new one,
// and echoes it in the response headers.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(requestIdHeaderKey)
		if requestId == "" {
			requestId = uuid.New().String()
		}
		c.Set(requestIdContextKey, requestId)
		c.Header(requestIdHeaderKey, requestId)
		c.Next()
	}
}

func requestIdFrom(c *gin.Context) string {
	return c.GetString(requestIdContextKey)
}
