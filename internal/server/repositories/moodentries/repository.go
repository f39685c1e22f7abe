// Package moodentries declares the repository contract for encrypted mood
// scores. Rows carry only (iv, ciphertext); the repository never sees a
// plaintext score.
package moodentries

import (
	"context"

	"github.com/stucanii/therappy/internal/server/models"
)

type Repository interface {
	// Create stores an encrypted entry and returns its ID.
	Create(ctx context.Context, entry *models.MoodEntry) (int64, error)

	// ListRecent returns up to limit entries for userID, newest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]*models.MoodEntry, error)
}
