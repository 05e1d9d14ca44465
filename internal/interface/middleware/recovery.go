package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-directory/pkg/response"
)

// PanicError wraps a recovered panic value.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

// Recovery turns a panic into a 500 envelope instead of gin's bare 500.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if logger != nil {
			logger.WithField("panic", recovered).WithField(CtxRequestIDKey, c.GetString(CtxRequestIDKey)).Error("recovered from panic")
		}
		response.Fail(c, &PanicError{Value: recovered})
	})
}
