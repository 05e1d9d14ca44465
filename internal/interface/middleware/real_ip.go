package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxRealIPKey = "real_ip"

// RealIP sets the client IP into Gin context (key: "real_ip").
// Priority:
// 1) X-Real-IP
// 2) X-Forwarded-For (left-most)
// 3) fallback to c.ClientIP()
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRealIPKey, realIP(c))
		c.Next()
	}
}

func realIP(c *gin.Context) string {
	if xr := strings.TrimSpace(c.GetHeader("X-Real-IP")); xr != "" {
		if ip := net.ParseIP(xr); ip != nil {
			return ip.String()
		}
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}

// ipFromCtx extracts the client IP from Gin context, falling back to "unknown"
func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString(CtxRealIPKey); ip != "" {
		return ip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
