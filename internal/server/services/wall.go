// Package services contains server-side business logic. This file implements
// WallService, the passphrase gate in front of the shared wall.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mkalens/wallpaper/internal/common"
	"github.com/mkalens/wallpaper/internal/hashx"
	"github.com/mkalens/wallpaper/internal/server/models"
	"github.com/mkalens/wallpaper/internal/server/repositories/repomanager"
)

// WallService verifies a submitted passphrase against the configured wall.
// No session token is issued on success: unlocking only yields the wall
// identity, and every privileged memo write re-verifies at the memo level.
type WallService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *hashx.Hasher
}

// NewWallService constructs a WallService using repositories and the hasher.
func NewWallService(db *sql.DB, m repomanager.RepositoryManager, hasher *hashx.Hasher) *WallService {
	return &WallService{db: db, repomanager: m, hasher: hasher}
}

// Unlock checks password against the stored wall passphrase hash and returns
// the wall identity on success. The returned record never carries the hash.
//
// Outcomes: ErrMissingInput for an empty password, ErrorNotFound when no wall
// row exists, ErrorUnauthorized on mismatch.
func (s *WallService) Unlock(ctx context.Context, password string) (*models.Wall, error) {
	if password == "" {
		return nil, common.ErrMissingInput
	}

	repo := s.repomanager.Walls(s.db)
	wall, err := repo.GetDefault(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	ok, err := s.hasher.Verify([]byte(password), wall.PasswordHash)
	if err != nil {
		// Corrupt stored hash, not a failed attempt.
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}

	wall.PasswordHash = ""
	return wall, nil
}
