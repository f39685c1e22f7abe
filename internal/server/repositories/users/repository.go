// Package users declares the repository contract for the user directory.
package users

import (
	"context"

	"github.com/stucanii/therappy/internal/server/models"
)

// Repository defines persistence operations for user accounts.
type Repository interface {
	// Create stores a new user. A duplicate username yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns the user with the given ID, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// UpdateRole changes the role of an existing user, or returns
	// common.ErrorNotFound for an unknown ID.
	UpdateRole(ctx context.Context, id string, role models.Role) error
}
