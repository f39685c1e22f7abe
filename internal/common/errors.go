// Package common contains shared constants and sentinel errors used across
// therappy components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Startup configuration errors.
	ErrInvalidKey = errors.New("invalid encryption key")

	// Refresh token lifecycle. Unknown, revoked and expired tokens all
	// surface as ErrInvalidToken; callers must not learn which it was.
	ErrInvalidToken  = errors.New("invalid token")
	ErrStoreConflict = errors.New("token store conflict")

	// Encryption errors. ErrAuthenticationFailed means the AEAD tag did not
	// verify (tampered ciphertext or wrong key). ErrDataCorruption means the
	// bytes decrypted cleanly but the content is not well-formed.
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrMalformedInput       = errors.New("malformed input")
	ErrDataCorruption       = errors.New("data corruption")
)
