package services

// Shared fakes for service tests. Services receive a sqlmock *sql.DB (only
// the transaction plumbing touches it) and fake repositories that ignore the
// bound DBTX.

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkalens/wallpaper/internal/dbx"
	"github.com/mkalens/wallpaper/internal/hashx"
	"github.com/mkalens/wallpaper/internal/server/models"
	memosrepo "github.com/mkalens/wallpaper/internal/server/repositories/memos"
	wallsrepo "github.com/mkalens/wallpaper/internal/server/repositories/walls"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testHasher(t *testing.T) *hashx.Hasher {
	t.Helper()
	return hashx.NewHasher(bcrypt.MinCost)
}

func mustHash(t *testing.T, h *hashx.Hasher, plaintext string) string {
	t.Helper()
	token, err := h.Hash([]byte(plaintext))
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	return token
}

type fakeWallsRepo struct {
	wall       *models.Wall
	getDefErr  error
	getByIDErr error
	createErr  error
	countOut   int64
}

func (f *fakeWallsRepo) Create(ctx context.Context, w *models.Wall) (*models.Wall, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return w, nil
}

func (f *fakeWallsRepo) GetDefault(ctx context.Context) (*models.Wall, error) {
	if f.getDefErr != nil {
		return nil, f.getDefErr
	}
	cp := *f.wall
	return &cp, nil
}

func (f *fakeWallsRepo) GetByID(ctx context.Context, id string) (*models.Wall, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	cp := *f.wall
	return &cp, nil
}

func (f *fakeWallsRepo) Count(ctx context.Context) (int64, error) {
	return f.countOut, nil
}

type fakeMemosRepo struct {
	created *models.Memo

	createErr error

	listOut []*models.Memo
	listErr error

	getOut *models.Memo
	getErr error

	hashOut string
	hashErr error

	updateOut *models.Memo
	updateErr error
	updated   bool

	deleteErr error
	deleted   bool
}

func (f *fakeMemosRepo) Create(ctx context.Context, m *models.Memo) (*models.Memo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *m
	f.created = &cp
	return m, nil
}

func (f *fakeMemosRepo) ListByWall(ctx context.Context, wallID string) ([]*models.Memo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeMemosRepo) GetByID(ctx context.Context, id string) (*models.Memo, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeMemosRepo) GetPasswordHash(ctx context.Context, id string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return f.hashOut, nil
}

func (f *fakeMemosRepo) Update(ctx context.Context, id string, changes models.MemoChanges) (*models.Memo, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = true
	return f.updateOut, nil
}

func (f *fakeMemosRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

type fakeRepoManager struct {
	w *fakeWallsRepo
	m *fakeMemosRepo
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Walls(db dbx.DBTX) wallsrepo.Repository      { return f.w }
func (f *fakeRepoManager) Memos(db dbx.DBTX) memosrepo.Repository      { return f.m }
