package walls

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mkalens/wallpaper/internal/common"
	"github.com/mkalens/wallpaper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+walls\s*\(id,\s*name,\s*password_hash\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+created_at,\s*updated_at\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now)
	mock.ExpectQuery(q).
		WithArgs("w-1", "wall", "$2a$hash").
		WillReturnRows(rows)

	w := &models.Wall{ID: "w-1", Name: "wall", PasswordHash: "$2a$hash"}
	got, err := repo.Create(context.Background(), w)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "w-1" || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected wall: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+walls`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Wall{ID: "w-1"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetDefault_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*password_hash,\s*created_at,\s*updated_at\s+FROM\s+walls\s+ORDER\s+BY\s+created_at\s+ASC\s+LIMIT\s+1\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "password_hash", "created_at", "updated_at"}).
		AddRow("w-1", "wall", "$2a$hash", now, now)
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.GetDefault(context.Background())
	if err != nil {
		t.Fatalf("GetDefault error: %v", err)
	}
	if got.ID != "w-1" || got.PasswordHash != "$2a$hash" {
		t.Fatalf("unexpected wall: %+v", got)
	}
}

func TestGetDefault_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*password_hash`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDefault(context.Background())
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*name,\s*password_hash,\s*created_at,\s*updated_at\s+FROM\s+walls\s+WHERE\s+id\s*=\s*\$1\s*$`

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "password_hash", "created_at", "updated_at"}).
		AddRow("w-1", "wall", "$2a$hash", now, now)
	mock.ExpectQuery(q).WithArgs("w-1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "w-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Name != "wall" {
		t.Fatalf("unexpected wall: %+v", got)
	}
}

func TestCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(int64(1))
	mock.ExpectQuery(`SELECT\s+COUNT\(\*\)\s+FROM\s+walls`).WillReturnRows(rows)

	n, err := repo.Count(context.Background())
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1, got %d", n)
	}
}
