package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/user-directory/internal/domain/entity"
	"github.com/oksasatya/user-directory/internal/domain/policy"
	"github.com/oksasatya/user-directory/pkg/apperror"
	"github.com/oksasatya/user-directory/pkg/response"
)

const CtxRoleKey = "role"

// RequireRoles resolves the claimed role (role header, then attached identity,
// then USER) and aborts with 403 unless policy.Authorize allows it.
// Gin matches header names case-insensitively.
func RequireRoles(roleHeader string, required ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimed := policy.ResolveRole(c.GetHeader(roleHeader), IdentityFrom(c))
		c.Set(CtxRoleKey, claimed)
		if !policy.Authorize(required, claimed) {
			response.Fail(c, apperror.Forbidden())
			return
		}
		c.Next()
	}
}
