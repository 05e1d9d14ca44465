// Package policy holds the authorization decision used by mutating operations.
package policy

import (
	"strings"

	"github.com/oksasatya/user-directory/internal/domain/entity"
)

// DefaultRole is assumed when neither the header nor an identity supplies one.
const DefaultRole = entity.RoleUser

// ResolveRole picks the claimed role, in this order:
//  1. the role header value, when non-blank;
//  2. the role of an attached identity, when present and non-blank;
//  3. DefaultRole.
//
// The header wins over an identity. The result is upper-cased and may be an
// unknown role, which never satisfies a requirement.
func ResolveRole(header string, identity *entity.Identity) entity.Role {
	if strings.TrimSpace(header) != "" {
		return entity.ParseRole(header)
	}
	if identity != nil && strings.TrimSpace(identity.Role) != "" {
		return entity.ParseRole(identity.Role)
	}
	return DefaultRole
}

// Authorize allows every claim when required is empty, otherwise only claims
// that are members of required.
func Authorize(required []entity.Role, claimed entity.Role) bool {
	if len(required) == 0 {
		return true
	}
	if !claimed.Known() {
		return false
	}
	for _, r := range required {
		if r == claimed {
			return true
		}
	}
	return false
}
