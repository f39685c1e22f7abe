package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/dbx"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new ACTIVE token row for userID expiring at now+validity.
func (r *PostgresRepository) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, userID, token, time.Now().Add(validity)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrStoreConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Rotate marks the token REVOKED and returns the owner in one conditional
// UPDATE. The WHERE clause carries the whole state machine: only an ACTIVE,
// unexpired row matches, so concurrent calls serialize on the row lock and
// at most one ever sees a match.
func (r *PostgresRepository) Rotate(ctx context.Context, token string) (string, error) {
	query := `
		UPDATE refresh_tokens
		SET revoked = true
		WHERE token = $1 AND revoked = false AND expires_at > now()
		RETURNING user_id
	`
	var userID string
	if err := r.db.QueryRowContext(ctx, query, token).Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrInvalidToken
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return userID, nil
}

// Revoke is Rotate without the returned identity.
func (r *PostgresRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.Rotate(ctx, token)
	return err
}
