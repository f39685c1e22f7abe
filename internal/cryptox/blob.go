package cryptox

import (
	"fmt"

	"github.com/stucanii/therappy/internal/common"
)

// BlobCodec encrypts large binary payloads (uploaded files) into a single
// buffer laid out as nonce‖ciphertext. The nonce width is fixed, so Open
// always slices the first NonceSize bytes as the nonce and hands the
// remainder to the cipher.
type BlobCodec struct {
	c *Cipher
}

func NewBlobCodec(c *Cipher) *BlobCodec {
	return &BlobCodec{c: c}
}

// Seal encrypts plain and returns the combined nonce‖ciphertext buffer.
func (b *BlobCodec) Seal(plain []byte) ([]byte, error) {
	nonce, ciphertext, err := b.c.Encrypt(plain)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(nonce)+len(ciphertext))
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	return out, nil
}

// Open decrypts a buffer produced by Seal. Buffers too short to contain a
// nonce and an auth tag fail with ErrMalformedInput; a tag mismatch fails
// with ErrAuthenticationFailed.
func (b *BlobCodec) Open(blob []byte) ([]byte, error) {
	if len(blob) < NonceSize+b.c.Overhead() {
		return nil, fmt.Errorf("%w: blob too short", common.ErrMalformedInput)
	}
	return b.c.Decrypt(blob[:NonceSize], blob[NonceSize:])
}
