package entity

// ProfilePatch holds the profile fields to overwrite. Nil means unchanged.
type ProfilePatch struct {
	ID          *int
	Code        *string
	DisplayName *string
}

// UserPatch is a structurally partial User. Nil fields are left untouched.
type UserPatch struct {
	Name    *string
	Email   *string
	Age     *int
	Profile *ProfilePatch
}

// HasEmail reports whether the patch carries a non-empty email.
func (p UserPatch) HasEmail() bool {
	return p.Email != nil && *p.Email != ""
}

// ApplyTo returns u with the patch merged in. u itself is not modified.
// The email, when present, is stored normalized; uniqueness is the caller's concern.
func (p UserPatch) ApplyTo(u User) User {
	if p.HasEmail() {
		u.Email = NormalizeEmail(*p.Email)
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
	if p.Profile != nil {
		u.Profile = p.Profile.ApplyTo(u.Profile)
	}
	return u
}

// ApplyTo merges the present sub-fields onto pr.
func (p ProfilePatch) ApplyTo(pr Profile) Profile {
	if p.ID != nil {
		pr.ID = *p.ID
	}
	if p.Code != nil {
		pr.Code = *p.Code
	}
	if p.DisplayName != nil {
		pr.DisplayName = *p.DisplayName
	}
	return pr
}
