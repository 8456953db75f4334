// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mkalens/wallpaper/internal/dbx"
	"github.com/mkalens/wallpaper/internal/server/migrations"
	"github.com/mkalens/wallpaper/internal/server/repositories/memos"
	"github.com/mkalens/wallpaper/internal/server/repositories/walls"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}

// Walls returns a walls.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Walls(db dbx.DBTX) walls.Repository {
	return walls.NewPostgresRepository(db)
}

// Memos returns a memos.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Memos(db dbx.DBTX) memos.Repository {
	return memos.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations points goose at the embedded migrations and applies them to
// the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}
