// Package server initializes and runs the main application server.
// It opens the database, applies migrations, builds the encryption codecs
// and object storage client, and wires the application services together.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/cryptox"
	"github.com/stucanii/therappy/internal/logging"
	"github.com/stucanii/therappy/internal/server/config"
	"github.com/stucanii/therappy/internal/server/repositories/repomanager"
	"github.com/stucanii/therappy/internal/server/services"
	"github.com/stucanii/therappy/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	UserService     *services.UserService
	SessionService  *services.SessionService
	MoodService     *services.MoodService
	EmotionService  *services.EmotionService
	MaterialService *services.MaterialService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSONLogger()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	key, err := cfg.EncryptionKey()
	if err != nil {
		return nil, err
	}
	cipher, err := cryptox.NewCipher(key)
	if err != nil {
		return nil, err
	}
	common.WipeByteArray(key)

	fieldCodec := cryptox.NewFieldCodec(cipher)
	blobCodec := cryptox.NewBlobCodec(cipher)

	store, err := storage.NewS3Store(ctx, storage.S3Options{
		Region:       cfg.S3Region,
		RootUser:     cfg.S3RootUser,
		RootPassword: cfg.S3RootPassword,
		Bucket:       cfg.S3Bucket,
		BaseEndpoint: cfg.S3BaseEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("object storage init error: %w", err)
	}

	us := services.NewUserService(db, rm)

	return &App{
		config:          cfg,
		logger:          logger,
		db:              db,
		UserService:     us,
		SessionService:  services.NewSessionService(db, rm, us, cfg),
		MoodService:     services.NewMoodService(db, rm, fieldCodec),
		EmotionService:  services.NewEmotionService(db, rm, fieldCodec),
		MaterialService: services.NewMaterialService(db, rm, blobCodec, store),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until the context is cancelled or a termination signal arrives,
// then closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	<-ctx.Done()

	app.logger.Info(ctx, "Shutting down...")

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err)
	}
}
