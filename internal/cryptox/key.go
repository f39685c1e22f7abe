// Package cryptox implements the data-at-rest encryption primitives used to
// protect clinical payloads (mood scores, emotion logs, uploaded materials)
// before they reach storage: an AES-GCM cipher with internally generated
// random nonces, a field codec producing (nonce, ciphertext) column pairs,
// and a blob codec producing single nonce‖ciphertext buffers.
package cryptox

import (
	"encoding/base64"
	"fmt"

	"github.com/stucanii/therappy/internal/common"
)

const (
	// KeySize is the required key length in bytes (AES-256).
	KeySize = 32

	// NonceSize is the AES-GCM nonce width in bytes.
	NonceSize = 12
)

// KeyFromBase64 decodes a standard-base64 encoded AES-256 key, as supplied
// through configuration. Any decode failure or a decoded length other than
// KeySize yields ErrInvalidKey; callers treat that as fatal at startup.
func KeyFromBase64(encoded string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid base64", common.ErrInvalidKey)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: must decode to %d bytes, got %d", common.ErrInvalidKey, KeySize, len(key))
	}
	return key, nil
}
