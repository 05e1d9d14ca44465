package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-directory/internal/metrics"
)

// AccessLog logs one structured line per request, at a level chosen by status,
// and records the request latency. Either logger or rec may be nil.
func AccessLog(logger *logrus.Logger, rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		status := c.Writer.Status()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if rec != nil {
			rec.RecordHTTPRequest(c.Request.Method, route, status, elapsed)
		}
		if logger == nil {
			return
		}

		fields := logrus.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       route,
			"status":      status,
			"duration_ms": float64(elapsed.Microseconds()) / 1000,
			"ip":          ipFromCtx(c),
			"request_id":  c.GetString(CtxRequestIDKey),
		}
		if role, ok := c.Get(CtxRoleKey); ok {
			fields["role"] = role
		}
		entry := logger.WithFields(fields)
		if err := c.Errors.Last(); err != nil {
			entry = entry.WithError(err.Err)
		}

		switch {
		case status >= 500:
			entry.Error("http_request")
		case status >= 400:
			entry.Warn("http_request")
		default:
			entry.Info("http_request")
		}
	}
}
