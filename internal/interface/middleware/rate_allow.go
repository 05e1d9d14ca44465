package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
)

// AllowPrivateIP lets requests from loopback and private networks bypass the limiter.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		parsed := net.ParseIP(ipFromCtx(c))
		if parsed == nil {
			return false
		}
		return parsed.IsLoopback() || parsed.IsPrivate()
	}
}
