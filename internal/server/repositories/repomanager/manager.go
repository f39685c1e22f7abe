package repomanager

import (
	"context"
	"database/sql"

	"github.com/stucanii/therappy/internal/dbx"
	"github.com/stucanii/therappy/internal/server/repositories/emotionlogs"
	"github.com/stucanii/therappy/internal/server/repositories/materials"
	"github.com/stucanii/therappy/internal/server/repositories/moodentries"
	"github.com/stucanii/therappy/internal/server/repositories/refreshtokens"
	"github.com/stucanii/therappy/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	MoodEntries(db dbx.DBTX) moodentries.Repository
	EmotionLogs(db dbx.DBTX) emotionlogs.Repository
	Materials(db dbx.DBTX) materials.Repository
}
