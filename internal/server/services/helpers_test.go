package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stucanii/therappy/internal/cryptox"
	"github.com/stucanii/therappy/internal/dbx"
	"github.com/stucanii/therappy/internal/server/models"
	emotionlogsrepo "github.com/stucanii/therappy/internal/server/repositories/emotionlogs"
	materialsrepo "github.com/stucanii/therappy/internal/server/repositories/materials"
	moodentriesrepo "github.com/stucanii/therappy/internal/server/repositories/moodentries"
	refreshtokensrepo "github.com/stucanii/therappy/internal/server/repositories/refreshtokens"
	usersrepo "github.com/stucanii/therappy/internal/server/repositories/users"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func newTestCipher(t *testing.T) *cryptox.Cipher {
	t.Helper()
	key := make([]byte, cryptox.KeySize)
	c, err := cryptox.NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher error: %v", err)
	}
	return c
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byUsernameOut *models.User
	byUsernameErr error

	byIDOut *models.User
	byIDErr error

	updateRoleErr error
	updatedRoles  map[string]models.Role
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.byUsernameErr != nil {
		return nil, f.byUsernameErr
	}
	return f.byUsernameOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeUsersRepo) UpdateRole(ctx context.Context, id string, role models.Role) error {
	if f.updateRoleErr != nil {
		return f.updateRoleErr
	}
	if f.updatedRoles == nil {
		f.updatedRoles = map[string]models.Role{}
	}
	f.updatedRoles[id] = role
	return nil
}

type fakeRefreshRepo struct {
	createErrs []error
	createdTok []string

	rotateOut string
	rotateErr error

	revokeErr error
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID, token string, validity time.Duration) error {
	f.createdTok = append(f.createdTok, token)
	if len(f.createErrs) == 0 {
		return nil
	}
	err := f.createErrs[0]
	f.createErrs = f.createErrs[1:]
	return err
}

func (f *fakeRefreshRepo) Rotate(ctx context.Context, token string) (string, error) {
	if f.rotateErr != nil {
		return "", f.rotateErr
	}
	return f.rotateOut, nil
}

func (f *fakeRefreshRepo) Revoke(ctx context.Context, token string) error {
	return f.revokeErr
}

type fakeMoodRepo struct {
	createOut int64
	createErr error
	created   []*models.MoodEntry

	listOut []*models.MoodEntry
	listErr error
	listLim int
}

func (f *fakeMoodRepo) Create(ctx context.Context, e *models.MoodEntry) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, e)
	return f.createOut, nil
}

func (f *fakeMoodRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*models.MoodEntry, error) {
	f.listLim = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeEmotionRepo struct {
	createOut int64
	createErr error
	created   []*models.EmotionLog

	listOut []*models.EmotionLog
	listErr error
	listLim int
}

func (f *fakeEmotionRepo) Create(ctx context.Context, l *models.EmotionLog) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, l)
	return f.createOut, nil
}

func (f *fakeEmotionRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*models.EmotionLog, error) {
	f.listLim = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeMaterialsRepo struct {
	createErr error
	created   []*models.Material

	byIDOut *models.Material
	byIDErr error

	listClientOut []*models.Material
	listPsychOut  []*models.Material
}

func (f *fakeMaterialsRepo) Create(ctx context.Context, m *models.Material) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMaterialsRepo) GetByID(ctx context.Context, id string) (*models.Material, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeMaterialsRepo) ListByClient(ctx context.Context, clientID string) ([]*models.Material, error) {
	return f.listClientOut, nil
}

func (f *fakeMaterialsRepo) ListByPsychologistClient(ctx context.Context, psychologistID, clientID string) ([]*models.Material, error) {
	return f.listPsychOut, nil
}

type fakeRepoManager struct {
	u   usersrepo.Repository
	r   refreshtokensrepo.Repository
	mo  moodentriesrepo.Repository
	em  emotionlogsrepo.Repository
	mat materialsrepo.Repository
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository {
	return m.r
}
func (m *fakeRepoManager) MoodEntries(db dbx.DBTX) moodentriesrepo.Repository { return m.mo }
func (m *fakeRepoManager) EmotionLogs(db dbx.DBTX) emotionlogsrepo.Repository { return m.em }
func (m *fakeRepoManager) Materials(db dbx.DBTX) materialsrepo.Repository     { return m.mat }
