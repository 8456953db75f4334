package walls

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkalens/wallpaper/internal/common"
	"github.com/mkalens/wallpaper/internal/dbx"
	"github.com/mkalens/wallpaper/internal/server/models"
)

// PostgresRepository implements wall storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, wall *models.Wall) (*models.Wall, error) {

	query :=
		`INSERT INTO walls (id, name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		wall.ID, wall.Name, wall.PasswordHash).Scan(&wall.CreatedAt, &wall.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return wall, nil
}

func (r *PostgresRepository) GetDefault(ctx context.Context) (*models.Wall, error) {
	query :=
		`SELECT id, name, password_hash, created_at, updated_at FROM walls
		 ORDER BY created_at ASC
		 LIMIT 1
		 `

	wall := &models.Wall{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&wall.ID, &wall.Name, &wall.PasswordHash, &wall.CreatedAt, &wall.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return wall, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Wall, error) {
	query :=
		`SELECT id, name, password_hash, created_at, updated_at FROM walls
		 WHERE id = $1
		 `

	wall := &models.Wall{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&wall.ID, &wall.Name, &wall.PasswordHash, &wall.CreatedAt, &wall.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return wall, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM walls`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
