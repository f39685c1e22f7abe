package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/stucanii/therappy/internal/common"
)

// Cipher performs authenticated encryption (AES-256-GCM) over byte payloads.
//
// The key is validated once at construction; a Cipher never operates with a
// malformed key. Nonces are generated internally from crypto/rand on every
// Encrypt call and are never caller-supplied, so a nonce is never reused
// under the same key. The value is safe for concurrent use: it holds no
// mutable state beyond the AEAD handle.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher builds a Cipher from a raw 32-byte key.
// It returns ErrInvalidKey for any other key length.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", common.ErrInvalidKey, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidKey, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidKey, err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce and returns the nonce
// and the ciphertext (which includes the GCM tag) separately.
func (c *Cipher) Encrypt(plaintext []byte) (nonce, ciphertext []byte, err error) {
	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("reading nonce: %w", err)
	}

	ciphertext = c.aead.Seal(nil, nonce, plaintext, nil)
	return nonce, ciphertext, nil
}

// Decrypt opens ciphertext in one atomic authenticated operation. If the
// integrity tag does not verify, no partial plaintext is returned and the
// call fails with ErrAuthenticationFailed. Structurally impossible inputs
// (wrong nonce width, ciphertext shorter than the tag) fail earlier with
// ErrMalformedInput so callers can tell tampering from plumbing bugs.
func (c *Cipher) Decrypt(nonce, ciphertext []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", common.ErrMalformedInput, NonceSize, len(nonce))
	}
	if len(ciphertext) < c.aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext shorter than auth tag", common.ErrMalformedInput)
	}

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, common.ErrAuthenticationFailed
	}
	return plaintext, nil
}

// Overhead returns the ciphertext expansion in bytes (the GCM tag width).
func (c *Cipher) Overhead() int {
	return c.aead.Overhead()
}
