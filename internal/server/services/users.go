// Package services contains the application services that coordinate
// repositories, cryptography, and object storage.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/server/models"
	"github.com/stucanii/therappy/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// SignUp creates an account with the default USER role. The role is raised
// to CLIENT or PSYCHOLOGIST later by an administrator.
func (s *UserService) SignUp(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	repo := s.repomanager.Users(s.db)

	user, err = repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// CreateWithRole creates an account with an explicit role. This is the
// provisioning path used by the admin tool; self-service signup always
// starts at USER.
func (s *UserService) CreateWithRole(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}

	user, err := s.SignUp(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if role == models.RoleUser {
		return user, nil
	}

	if err := s.repomanager.Users(s.db).UpdateRole(ctx, user.ID, role); err != nil {
		return nil, fmt.Errorf("error setting role: %w", err)
	}
	user.Role = role
	return user, nil
}

// VerifyCredentials checks a username/password pair. A missing user and a
// wrong password both come back as ErrorUnauthorized so callers cannot
// probe for accounts.
func (s *UserService) VerifyCredentials(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// GetByID loads a user by ID.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}
