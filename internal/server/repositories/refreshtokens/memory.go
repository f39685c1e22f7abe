package refreshtokens

import (
	"context"
	"sync"
	"time"

	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/server/models"
)

// MemoryRepository is an in-memory Repository used in tests and local
// development. It enforces the same state machine as the PostgreSQL
// implementation, with a mutex standing in for the row lock.
type MemoryRepository struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tokens: make(map[string]*models.RefreshToken)}
}

func (r *MemoryRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokens[token]; exists {
		return common.ErrStoreConflict
	}
	r.tokens[token] = &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(validity),
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *MemoryRepository) Rotate(ctx context.Context, token string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.tokens[token]
	if !ok || rec.Revoked || rec.ExpiresAt.Before(time.Now()) {
		return "", common.ErrInvalidToken
	}
	rec.Revoked = true
	return rec.UserID, nil
}

func (r *MemoryRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.Rotate(ctx, token)
	return err
}
