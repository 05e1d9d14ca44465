package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/user-directory/internal/domain/entity"
	"github.com/oksasatya/user-directory/pkg/helpers"
)

const CtxIdentityKey = "identity"

// Identity attaches the identity carried by an "Authorization: Bearer" token.
// Requests without a token, or with one that does not parse, continue
// anonymously; this service authorizes asserted roles and does not authenticate.
func Identity(jwt *helpers.JWTManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwt == nil {
			c.Next()
			return
		}
		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.Next()
			return
		}
		claims, err := jwt.ParseToken(strings.TrimSpace(token))
		if err != nil {
			if logger != nil {
				logger.WithError(err).WithField(CtxRequestIDKey, c.GetString(CtxRequestIDKey)).Debug("ignoring unparsable bearer token")
			}
			c.Next()
			return
		}
		c.Set(CtxIdentityKey, &entity.Identity{Subject: claims.Subject, Role: claims.Role})
		c.Next()
	}
}

// IdentityFrom returns the identity attached by Identity, if any.
func IdentityFrom(c *gin.Context) *entity.Identity {
	v, ok := c.Get(CtxIdentityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*entity.Identity)
	return id
}
