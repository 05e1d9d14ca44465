package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oksasatya/user-directory/internal/application"
)

const (
	CtxRequestIDKey  = "request_id"
	HeaderRequestID  = "X-Request-ID"
	maxRequestIDSize = 128
)

// RequestIDMiddleware reuses an incoming X-Request-ID or generates one, echoes it
// back, and stores it in both the Gin context and the request context.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDSize {
			id = uuid.New().String()
		}
		c.Set(CtxRequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), application.RequestIDKey{}, id))
		c.Next()
	}
}
