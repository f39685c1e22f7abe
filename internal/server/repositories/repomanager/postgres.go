// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stucanii/therappy/internal/dbx"
	"github.com/stucanii/therappy/internal/server/migrations"
	"github.com/stucanii/therappy/internal/server/repositories/emotionlogs"
	"github.com/stucanii/therappy/internal/server/repositories/materials"
	"github.com/stucanii/therappy/internal/server/repositories/moodentries"
	"github.com/stucanii/therappy/internal/server/repositories/refreshtokens"
	"github.com/stucanii/therappy/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// RefreshTokens returns a refreshtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

// MoodEntries returns a moodentries.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) MoodEntries(db dbx.DBTX) moodentries.Repository {
	return moodentries.NewPostgresRepository(db)
}

// EmotionLogs returns an emotionlogs.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) EmotionLogs(db dbx.DBTX) emotionlogs.Repository {
	return emotionlogs.NewPostgresRepository(db)
}

// Materials returns a materials.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Materials(db dbx.DBTX) materials.Repository {
	return materials.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
