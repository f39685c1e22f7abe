package moodentries

import (
	"context"
	"fmt"

	"github.com/stucanii/therappy/internal/dbx"
	"github.com/stucanii/therappy/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.MoodEntry) (int64, error) {
	query := `
		INSERT INTO mood_entries (user_id, iv, ciphertext)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, entry.UserID, entry.IV, entry.Ciphertext).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*models.MoodEntry, error) {
	query := `
		SELECT id, user_id, created_at, iv, ciphertext
		FROM mood_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var entries []*models.MoodEntry
	for rows.Next() {
		e := &models.MoodEntry{}
		if err := rows.Scan(&e.ID, &e.UserID, &e.CreatedAt, &e.IV, &e.Ciphertext); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entries, nil
}
