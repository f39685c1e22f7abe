// Package materials declares the repository contract for educational
// material metadata. The encrypted file content itself lives in object
// storage; rows only reference it by storage key.
package materials

import (
	"context"

	"github.com/stucanii/therappy/internal/server/models"
)

type Repository interface {
	// Create stores the metadata row for an uploaded material.
	Create(ctx context.Context, m *models.Material) error

	// GetByID returns the material with the given ID, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Material, error)

	// ListByClient returns the client's materials, newest first.
	ListByClient(ctx context.Context, clientID string) ([]*models.Material, error)

	// ListByPsychologistClient returns the materials a psychologist uploaded
	// for one client, newest first.
	ListByPsychologistClient(ctx context.Context, psychologistID, clientID string) ([]*models.Material, error)
}
