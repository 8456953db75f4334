package memos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkalens/wallpaper/internal/common"
	"github.com/mkalens/wallpaper/internal/dbx"
	"github.com/mkalens/wallpaper/internal/server/models"
)

// PostgresRepository implements memo storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, memo *models.Memo) (*models.Memo, error) {

	query :=
		`INSERT INTO memos (id, wall_id, content, color, is_pinned, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		memo.ID, memo.WallID, memo.Content, memo.Color, memo.IsPinned, memo.PasswordHash).
		Scan(&memo.CreatedAt, &memo.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return memo, nil
}

func (r *PostgresRepository) ListByWall(ctx context.Context, wallID string) ([]*models.Memo, error) {
	query :=
		`SELECT id, wall_id, content, color, is_pinned, created_at, updated_at FROM memos
		 WHERE wall_id = $1
		 ORDER BY is_pinned DESC, created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, wallID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Memo
	for rows.Next() {
		var item models.Memo
		if err := rows.Scan(
			&item.ID, &item.WallID, &item.Content, &item.Color, &item.IsPinned,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Memo, error) {
	query :=
		`SELECT id, wall_id, content, color, is_pinned, created_at, updated_at FROM memos
		 WHERE id = $1
		 `

	memo := &models.Memo{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&memo.ID, &memo.WallID, &memo.Content, &memo.Color, &memo.IsPinned,
		&memo.CreatedAt, &memo.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return memo, nil
}

func (r *PostgresRepository) GetPasswordHash(ctx context.Context, id string) (string, error) {
	query :=
		`SELECT password_hash FROM memos
		 WHERE id = $1
		 `

	var hash string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&hash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return hash, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, changes models.MemoChanges) (*models.Memo, error) {

	// NULL arguments leave the column as-is via COALESCE, so one statement
	// covers every partial change set.
	query :=
		`UPDATE memos
		 SET content = COALESCE($2, content),
		     color = COALESCE($3, color),
		     is_pinned = COALESCE($4, is_pinned),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING id, wall_id, content, color, is_pinned, created_at, updated_at
		 `

	memo := &models.Memo{}
	err := r.db.QueryRowContext(ctx, query,
		id, changes.Content, (*string)(changes.Color), changes.IsPinned).Scan(
		&memo.ID, &memo.WallID, &memo.Content, &memo.Color, &memo.IsPinned,
		&memo.CreatedAt, &memo.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return memo, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM memos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
