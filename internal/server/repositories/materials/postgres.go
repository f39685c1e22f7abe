package materials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/dbx"
	"github.com/stucanii/therappy/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Material) error {
	query := `
		INSERT INTO materials (id, client_id, psychologist_id, filename, content_type, size_bytes, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := r.db.ExecContext(ctx, query,
		m.ID, m.ClientID, m.Psychologist, m.Filename, m.ContentType, m.SizeBytes, m.StorageKey); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Material, error) {
	query := `
		SELECT id, client_id, psychologist_id, filename, content_type, size_bytes, storage_key, uploaded_at
		FROM materials
		WHERE id = $1
	`
	m := &models.Material{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.ClientID, &m.Psychologist, &m.Filename, &m.ContentType, &m.SizeBytes, &m.StorageKey, &m.UploadedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) ListByClient(ctx context.Context, clientID string) ([]*models.Material, error) {
	query := `
		SELECT id, client_id, psychologist_id, filename, content_type, size_bytes, storage_key, uploaded_at
		FROM materials
		WHERE client_id = $1
		ORDER BY uploaded_at DESC
	`
	return r.list(ctx, query, clientID)
}

func (r *PostgresRepository) ListByPsychologistClient(ctx context.Context, psychologistID, clientID string) ([]*models.Material, error) {
	query := `
		SELECT id, client_id, psychologist_id, filename, content_type, size_bytes, storage_key, uploaded_at
		FROM materials
		WHERE psychologist_id = $1 AND client_id = $2
		ORDER BY uploaded_at DESC
	`
	return r.list(ctx, query, psychologistID, clientID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Material, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.Material
	for rows.Next() {
		m := &models.Material{}
		if err := rows.Scan(&m.ID, &m.ClientID, &m.Psychologist, &m.Filename, &m.ContentType, &m.SizeBytes, &m.StorageKey, &m.UploadedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
