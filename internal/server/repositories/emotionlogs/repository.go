// Package emotionlogs declares the repository contract for encrypted
// free-text emotion notes.
package emotionlogs

import (
	"context"

	"github.com/stucanii/therappy/internal/server/models"
)

type Repository interface {
	// Create stores an encrypted log and returns its ID.
	Create(ctx context.Context, log *models.EmotionLog) (int64, error)

	// ListRecent returns up to limit logs for userID, newest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]*models.EmotionLog, error)
}
