package auth

import (
	"github.com/google/uuid"
)

// NewRememberToken returns a fresh opaque token for persistent sessions.
// Only its bcrypt digest is stored server-side.
func NewRememberToken() string {
	return uuid.NewString()
}

// Authenticated reports whether token matches the stored remember digest.
// Returns false, never an error, when no digest has been set.
func Authenticated(rememberDigest, token string) bool {
	return CheckPassword(rememberDigest, token)
}
