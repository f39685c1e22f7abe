package cryptox

import (
	"fmt"
	"strconv"

	"github.com/stucanii/therappy/internal/common"
)

// FieldCodec encrypts text and small-integer fields for two-column storage:
// the nonce lands in an "iv" column and the ciphertext in a "ciphertext"
// column next to it. Integers travel as their decimal text rendering.
//
// The codec never logs, persists, or caches plaintext; the contract is
// encrypt-before-handoff-to-storage and decrypt-only-on-demand.
type FieldCodec struct {
	c *Cipher
}

func NewFieldCodec(c *Cipher) *FieldCodec {
	return &FieldCodec{c: c}
}

// EncryptString seals a UTF-8 string.
func (f *FieldCodec) EncryptString(value string) (nonce, ciphertext []byte, err error) {
	return f.c.Encrypt([]byte(value))
}

// DecryptString recovers a string sealed with EncryptString.
func (f *FieldCodec) DecryptString(nonce, ciphertext []byte) (string, error) {
	plaintext, err := f.c.Decrypt(nonce, ciphertext)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// EncryptInt seals an integer rendered as decimal text.
func (f *FieldCodec) EncryptInt(value int) (nonce, ciphertext []byte, err error) {
	return f.c.Encrypt([]byte(strconv.Itoa(value)))
}

// DecryptInt recovers an integer sealed with EncryptInt. If the bytes
// decrypt cleanly but do not parse as an integer, the stored content has
// drifted from the schema and the call fails with ErrDataCorruption,
// distinct from ErrAuthenticationFailed.
func (f *FieldCodec) DecryptInt(nonce, ciphertext []byte) (int, error) {
	plaintext, err := f.c.Decrypt(nonce, ciphertext)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(string(plaintext))
	if err != nil {
		return 0, fmt.Errorf("%w: field is not an integer", common.ErrDataCorruption)
	}
	return n, nil
}
