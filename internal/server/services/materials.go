package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stucanii/therappy/internal/common"
	"github.com/stucanii/therappy/internal/cryptox"
	"github.com/stucanii/therappy/internal/server/models"
	"github.com/stucanii/therappy/internal/server/repositories/repomanager"
	"github.com/stucanii/therappy/internal/server/storage"
)

// MaterialService handles educational materials a psychologist uploads for
// a client. File content is sealed with the blob codec before it leaves the
// process; object storage only ever holds ciphertext, and the database only
// holds metadata plus the storage key.
type MaterialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *cryptox.BlobCodec
	store       storage.ObjectStore
}

func NewMaterialService(db *sql.DB, m repomanager.RepositoryManager, codec *cryptox.BlobCodec, store storage.ObjectStore) *MaterialService {
	return &MaterialService{db: db, repomanager: m, codec: codec, store: store}
}

// Upload seals the content, writes it to object storage, and records the
// metadata row. Only psychologists may upload, and only for an existing
// client account.
func (s *MaterialService) Upload(ctx context.Context, uploader *models.User, clientID, filename, contentType string, content []byte) (*models.Material, error) {
	if uploader.Role != models.RolePsychologist {
		return nil, common.ErrorUnauthorized
	}
	if filename == "" {
		return nil, fmt.Errorf("%w: filename must not be empty", common.ErrorValidation)
	}

	client, err := s.repomanager.Users(s.db).GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if client.Role != models.RoleClient {
		return nil, fmt.Errorf("%w: recipient is not a client", common.ErrorValidation)
	}

	sealed, err := s.codec.Seal(content)
	if err != nil {
		return nil, common.ErrorInternal
	}

	key := storage.RandomStorageKey()
	if err := s.store.Put(ctx, key, sealed); err != nil {
		return nil, fmt.Errorf("error storing material: %w", err)
	}

	material := &models.Material{
		ID:           uuid.New().String(),
		ClientID:     client.ID,
		Psychologist: uploader.ID,
		Filename:     filename,
		ContentType:  contentType,
		SizeBytes:    int64(len(content)),
		StorageKey:   key,
	}

	if err := s.repomanager.Materials(s.db).Create(ctx, material); err != nil {
		return nil, fmt.Errorf("error creating material: %w", err)
	}

	return material, nil
}

// Download fetches a material and returns the decrypted content alongside
// the metadata. The client it was uploaded for, the psychologist who
// uploaded it, and administrators may download; everyone else gets
// ErrorUnauthorized.
func (s *MaterialService) Download(ctx context.Context, requester *models.User, materialID string) (*models.Material, []byte, error) {
	material, err := s.repomanager.Materials(s.db).GetByID(ctx, materialID)
	if err != nil {
		return nil, nil, err
	}

	if !s.canAccess(requester, material) {
		return nil, nil, common.ErrorUnauthorized
	}

	sealed, err := s.store.Get(ctx, material.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("error fetching material: %w", err)
	}

	content, err := s.codec.Open(sealed)
	if err != nil {
		return nil, nil, err
	}

	return material, content, nil
}

// ListForClient returns the materials uploaded for the client, newest first.
func (s *MaterialService) ListForClient(ctx context.Context, client *models.User) ([]*models.Material, error) {
	if client.Role != models.RoleClient {
		return nil, common.ErrorUnauthorized
	}
	return s.repomanager.Materials(s.db).ListByClient(ctx, client.ID)
}

// ListForPsychologistClient returns the materials the psychologist uploaded
// for one client, newest first.
func (s *MaterialService) ListForPsychologistClient(ctx context.Context, psychologist *models.User, clientID string) ([]*models.Material, error) {
	if psychologist.Role != models.RolePsychologist {
		return nil, common.ErrorUnauthorized
	}
	return s.repomanager.Materials(s.db).ListByPsychologistClient(ctx, psychologist.ID, clientID)
}

func (s *MaterialService) canAccess(u *models.User, m *models.Material) bool {
	switch {
	case u.Role == models.RoleAdmin:
		return true
	case u.ID == m.ClientID && u.Role == models.RoleClient:
		return true
	case u.ID == m.Psychologist && u.Role == models.RolePsychologist:
		return true
	}
	return false
}
