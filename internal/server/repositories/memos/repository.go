// Package memos provides the PostgreSQL-backed repository for memo records.
//
// The read-path invariant lives here: list/fetch queries never select the
// password_hash column. Only GetPasswordHash reads it, and only the
// verification path calls that.
package memos

import (
	"context"

	"github.com/mkalens/wallpaper/internal/server/models"
)

type Repository interface {
	// Create inserts a memo and returns it with its generated timestamps.
	Create(ctx context.Context, memo *models.Memo) (*models.Memo, error)

	// ListByWall returns the wall's memos, pinned first, then newest first
	// within each group.
	ListByWall(ctx context.Context, wallID string) ([]*models.Memo, error)

	// GetByID returns a single memo without its hash.
	GetByID(ctx context.Context, id string) (*models.Memo, error)

	// GetPasswordHash returns only the stored hash token for the memo.
	GetPasswordHash(ctx context.Context, id string) (string, error)

	// Update applies the non-nil fields of changes and refreshes updated_at,
	// returning the updated memo.
	Update(ctx context.Context, id string, changes models.MemoChanges) (*models.Memo, error)

	// Delete permanently removes the memo.
	Delete(ctx context.Context, id string) error
}
