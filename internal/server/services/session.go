package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/dbx"
	"github.com/stucanii/therappy/internal/server/auth"
	"github.com/stucanii/therappy/internal/server/config"
	"github.com/stucanii/therappy/internal/server/models"
	"github.com/stucanii/therappy/internal/server/repositories/refreshtokens"
	"github.com/stucanii/therappy/internal/server/repositories/repomanager"
)

// refreshTokenBytes is the entropy of an opaque refresh token before
// base64url encoding (48 bytes encode to 64 characters).
const refreshTokenBytes = 48

// createRetries bounds regeneration attempts when a freshly generated token
// string collides with a stored one.
const createRetries = 3

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SessionService implements the session lifecycle: login issues a token
// pair, refresh rotates the pair with single-use semantics, and logout
// revokes the refresh token. Access tokens stay valid until expiry even
// after logout; only the refresh side is stateful.
type SessionService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	users                        *UserService
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, users *UserService, cfg *config.Config) *SessionService {
	return &SessionService{
		db:                           db,
		repomanager:                  m,
		users:                        users,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Login verifies credentials and issues a fresh token pair.
func (s *SessionService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.users.VerifyCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return s.generateTokenPair(ctx, s.repomanager.RefreshTokens(s.db), user)
}

// Refresh exchanges a refresh token for a new pair. The presented token is
// revoked and the replacement created inside one transaction, so a crash
// between the two steps never leaves the client with both tokens dead or
// both alive.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var tokenPair *TokenPair

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.RefreshTokens(tx)

		userID, err := repo.Rotate(ctx, refreshToken)
		if err != nil {
			return err
		}

		user, err := s.repomanager.Users(tx).GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("error loading token owner: %w", err)
		}

		tokenPair, err = s.generateTokenPair(ctx, repo, user)
		return err
	})

	if err != nil {
		return nil, err
	}

	return tokenPair, nil
}

// Logout revokes the refresh token. Revoking a token that is already
// revoked, expired, or unknown fails with ErrInvalidToken, same as a
// failed refresh.
func (s *SessionService) Logout(ctx context.Context, refreshToken string) error {
	return s.repomanager.RefreshTokens(s.db).Revoke(ctx, refreshToken)
}

func (s *SessionService) generateTokenPair(ctx context.Context, repo refreshtokens.Repository, user *models.User) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(user.Username, user.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	for attempt := 0; attempt < createRetries; attempt++ {
		refreshToken, err := common.MakeRandBase64URLString(refreshTokenBytes)
		if err != nil {
			return nil, common.ErrorInternal
		}

		err = repo.Create(ctx, user.ID, refreshToken, s.refreshTokenValidityDuration)
		if err == nil {
			return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
		}
		if !errors.Is(err, common.ErrStoreConflict) {
			return nil, common.ErrorInternal
		}
	}

	return nil, common.ErrorInternal
}
