package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/cryptox"
	"github.com/stucanii/therappy/internal/server/models"
	"github.com/stucanii/therappy/internal/server/repositories/repomanager"
)

// moodHistoryLimit caps how many recent entries a client gets back.
const moodHistoryLimit = 30

// Mood is a decrypted mood entry as returned to the owner.
type Mood struct {
	ID        int64
	Score     int
	CreatedAt time.Time
}

// MoodService records and reads back mood scores. Scores are 1..5 and are
// encrypted before they reach the database; only the owning client can
// record or read them.
type MoodService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *cryptox.FieldCodec
}

func NewMoodService(db *sql.DB, m repomanager.RepositoryManager, codec *cryptox.FieldCodec) *MoodService {
	return &MoodService{db: db, repomanager: m, codec: codec}
}

// Record stores a mood score for the client and returns the entry ID.
func (s *MoodService) Record(ctx context.Context, user *models.User, score int) (int64, error) {
	if user.Role != models.RoleClient {
		return 0, common.ErrorUnauthorized
	}
	if score < 1 || score > 5 {
		return 0, fmt.Errorf("%w: score must be between 1 and 5", common.ErrorValidation)
	}

	nonce, ciphertext, err := s.codec.EncryptInt(score)
	if err != nil {
		return 0, common.ErrorInternal
	}

	repo := s.repomanager.MoodEntries(s.db)
	id, err := repo.Create(ctx, &models.MoodEntry{
		UserID:     user.ID,
		IV:         nonce,
		Ciphertext: ciphertext,
	})
	if err != nil {
		return 0, fmt.Errorf("error creating mood entry: %w", err)
	}
	return id, nil
}

// Latest returns the client's most recent mood entries, newest first,
// decrypted.
func (s *MoodService) Latest(ctx context.Context, user *models.User) ([]*Mood, error) {
	if user.Role != models.RoleClient {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.MoodEntries(s.db)
	entries, err := repo.ListRecent(ctx, user.ID, moodHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing mood entries: %w", err)
	}

	out := make([]*Mood, 0, len(entries))
	for _, e := range entries {
		score, err := s.codec.DecryptInt(e.IV, e.Ciphertext)
		if err != nil {
			return nil, err
		}
		out = append(out, &Mood{ID: e.ID, Score: score, CreatedAt: e.CreatedAt})
	}
	return out, nil
}
