package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/cryptox"
	"github.com/stucanii/therappy/internal/server/models"
	"github.com/stucanii/therappy/internal/server/repositories/repomanager"
)

// emotionTextMaxLen is the longest note accepted, after trimming.
const emotionTextMaxLen = 5000

// emotionHistoryLimit caps how many recent logs a client gets back.
const emotionHistoryLimit = 50

// Emotion is a decrypted emotion log as returned to the owner.
type Emotion struct {
	ID        int64
	Text      string
	CreatedAt time.Time
}

// EmotionService records and reads back free-text emotion notes. Text is
// encrypted before it reaches the database; only the owning client can
// record or read it.
type EmotionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *cryptox.FieldCodec
}

func NewEmotionService(db *sql.DB, m repomanager.RepositoryManager, codec *cryptox.FieldCodec) *EmotionService {
	return &EmotionService{db: db, repomanager: m, codec: codec}
}

// Record stores an emotion note for the client and returns the log ID.
// Leading and trailing whitespace is trimmed before validation, so an
// all-whitespace note is rejected as empty.
func (s *EmotionService) Record(ctx context.Context, user *models.User, text string) (int64, error) {
	if user.Role != models.RoleClient {
		return 0, common.ErrorUnauthorized
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: text must not be empty", common.ErrorValidation)
	}
	if len([]rune(text)) > emotionTextMaxLen {
		return 0, fmt.Errorf("%w: text exceeds %d characters", common.ErrorValidation, emotionTextMaxLen)
	}

	nonce, ciphertext, err := s.codec.EncryptString(text)
	if err != nil {
		return 0, common.ErrorInternal
	}

	repo := s.repomanager.EmotionLogs(s.db)
	id, err := repo.Create(ctx, &models.EmotionLog{
		UserID:     user.ID,
		IV:         nonce,
		Ciphertext: ciphertext,
	})
	if err != nil {
		return 0, fmt.Errorf("error creating emotion log: %w", err)
	}
	return id, nil
}

// Latest returns the client's most recent emotion logs, newest first,
// decrypted.
func (s *EmotionService) Latest(ctx context.Context, user *models.User) ([]*Emotion, error) {
	if user.Role != models.RoleClient {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.EmotionLogs(s.db)
	logs, err := repo.ListRecent(ctx, user.ID, emotionHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("error listing emotion logs: %w", err)
	}

	out := make([]*Emotion, 0, len(logs))
	for _, l := range logs {
		text, err := s.codec.DecryptString(l.IV, l.Ciphertext)
		if err != nil {
			return nil, err
		}
		out = append(out, &Emotion{ID: l.ID, Text: text, CreatedAt: l.CreatedAt})
	}
	return out, nil
}
