package models

import "time"

// MoodEntry stores one encrypted mood score (1..5). IV and Ciphertext are
// the two columns produced by the field codec; the plaintext score never
// touches the row.
type MoodEntry struct {
	ID         int64
	UserID     string
	CreatedAt  time.Time
	IV         []byte
	Ciphertext []byte
}
