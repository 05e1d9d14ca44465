package entity

import (
	"strings"
	"time"
)

// Profile is embedded in a User and has no lifecycle of its own.
// Its ID is supplied by the caller, never generated.
type Profile struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
}

// User is the aggregate root of the directory.
// Email is always kept in normalized form (see NormalizeEmail).
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser describes the fields a caller provides at creation.
type NewUser struct {
	Name    string
	Email   string
	Age     int
	Profile Profile
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// The result is the uniqueness key of the directory.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Matches reports whether needle (already trimmed and lower-cased) occurs in the
// name, email, profile code or profile display name, case-insensitively.
func (u User) Matches(needle string) bool {
	for _, field := range []string{u.Name, u.Email, u.Profile.Code, u.Profile.DisplayName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
