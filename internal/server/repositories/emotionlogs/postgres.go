package emotionlogs

import (
	"context"
	"fmt"

	"github.com/stucanii/therappy/internal/dbx"
	"github.com/stucanii/therappy/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, log *models.EmotionLog) (int64, error) {
	query := `
		INSERT INTO emotion_logs (user_id, iv, ciphertext)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRowContext(ctx, query, log.UserID, log.IV, log.Ciphertext).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) ListRecent(ctx context.Context, userID string, limit int) ([]*models.EmotionLog, error) {
	query := `
		SELECT id, user_id, created_at, iv, ciphertext
		FROM emotion_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var logs []*models.EmotionLog
	for rows.Next() {
		l := &models.EmotionLog{}
		if err := rows.Scan(&l.ID, &l.UserID, &l.CreatedAt, &l.IV, &l.Ciphertext); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return logs, nil
}
