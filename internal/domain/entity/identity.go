package entity

// Identity is a caller identity attached earlier in the request pipeline.
// It is trusted as-is; nothing in this service verifies it beyond the token signature.
type Identity struct {
	Subject string
	Role    string
}
