package models

import "time"

// RefreshToken is the stored record behind an opaque refresh token string.
// Revoked is monotonic: once true it never goes back to false, and rows are
// never deleted so the rotation history stays auditable.
type RefreshToken struct {
	ID        int64
	UserID    string
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}
