package entity

import "strings"

// Role is a coarse capability tag asserted by the caller.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole upper-cases s. The returned role may be unknown; check Known.
func ParseRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

// Known reports whether r is one of the defined roles.
func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleUser
}

func (r Role) String() string { return string(r) }
