package models

import "time"

// EmotionLog stores one encrypted free-text emotion note.
type EmotionLog struct {
	ID         int64
	UserID     string
	CreatedAt  time.Time
	IV         []byte
	Ciphertext []byte
}
