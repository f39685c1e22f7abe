// Package refreshtokens implements the stored half of the session protocol:
// opaque refresh tokens with single-use rotation and monotonic revocation.
//
// A record has exactly two states, ACTIVE and REVOKED, and one legal
// transition between them. Expiry is evaluated at validation time, not as a
// stored transition, and rows are never deleted so the history stays
// auditable. Unknown, revoked, and expired tokens are indistinguishable to
// callers: all three fail with common.ErrInvalidToken.
package refreshtokens

import (
	"context"
	"time"
)

// Repository defines operations for issuing, rotating, and revoking refresh
// tokens.
type Repository interface {
	// Create stores a new ACTIVE token for userID with an expiry of
	// now+validity. A colliding token string yields common.ErrStoreConflict,
	// which callers may retry with a freshly generated token.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Rotate atomically transitions an ACTIVE, unexpired token to REVOKED
	// and returns the owning user ID. The lookup and the state transition
	// are one guarded write: of any number of concurrent Rotate calls on
	// the same token, exactly one succeeds and the rest fail with
	// common.ErrInvalidToken.
	Rotate(ctx context.Context, token string) (string, error)

	// Revoke transitions an ACTIVE, unexpired token to REVOKED without
	// returning anything. Revoking an already-revoked, expired, or unknown
	// token is common.ErrInvalidToken, matching Rotate.
	Revoke(ctx context.Context, token string) error
}
