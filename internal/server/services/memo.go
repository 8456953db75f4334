package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mkalens/wallpaper/internal/common"
	"github.com/mkalens/wallpaper/internal/dbx"
	"github.com/mkalens/wallpaper/internal/hashx"
	"github.com/mkalens/wallpaper/internal/server/models"
	"github.com/mkalens/wallpaper/internal/server/repositories/memos"
	"github.com/mkalens/wallpaper/internal/server/repositories/repomanager"
)

// MemoService implements the memo lifecycle: create with a freshly chosen
// password, list in board order, and password-gated update/delete. The gate
// and the mutation run in one transaction, so a memo can never be mutated
// past a failed verification.
type MemoService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *hashx.Hasher
}

// NewMemoService constructs a MemoService using repositories and the hasher.
func NewMemoService(db *sql.DB, m repomanager.RepositoryManager, hasher *hashx.Hasher) *MemoService {
	return &MemoService{db: db, repomanager: m, hasher: hasher}
}

// Create validates the input, hashes the chosen password, and inserts the
// memo. The returned record never carries the hash. A missing color falls
// back to the default; anything outside the fixed set is rejected.
func (s *MemoService) Create(ctx context.Context, wallID, content string, color models.Color, password string) (*models.Memo, error) {
	content = strings.TrimSpace(content)
	if wallID == "" || content == "" || password == "" {
		return nil, common.ErrMissingInput
	}
	if utf8.RuneCountInString(password) < common.MinMemoPasswordLen {
		return nil, common.ErrWeakPassword
	}
	if utf8.RuneCountInString(content) > common.MaxMemoContentLen {
		return nil, common.ErrContentTooLong
	}
	if color == "" {
		color = models.DefaultColor
	}
	if !color.Valid() {
		return nil, common.ErrInvalidColor
	}

	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, common.ErrorInternal
	}

	memo := &models.Memo{
		ID:           uuid.NewString(),
		WallID:       wallID,
		Content:      content,
		Color:        color,
		IsPinned:     false,
		PasswordHash: hash,
	}

	repo := s.repomanager.Memos(s.db)
	memo, err = repo.Create(ctx, memo)
	if err != nil {
		return nil, err
	}

	memo.PasswordHash = ""
	return memo, nil
}

// List returns the wall's memos, pinned first, then newest first within each
// group. The result is a snapshot; callers re-invoke to refresh.
func (s *MemoService) List(ctx context.Context, wallID string) ([]*models.Memo, error) {
	if wallID == "" {
		return nil, common.ErrMissingInput
	}
	repo := s.repomanager.Memos(s.db)
	return repo.ListByWall(ctx, wallID)
}

// Verify checks password against the memo's stored hash, fetching only the
// hash column. Outcomes: ErrMissingInput, ErrorNotFound, ErrorUnauthorized,
// or nil on a match.
func (s *MemoService) Verify(ctx context.Context, memoID, password string) error {
	if memoID == "" || password == "" {
		return common.ErrMissingInput
	}
	return s.verifyWithRepo(ctx, s.repomanager.Memos(s.db), memoID, password)
}

// VerifyOwnership collapses every verification outcome to a bool, so a
// missing memo and a wrong password are indistinguishable to the caller.
func (s *MemoService) VerifyOwnership(ctx context.Context, memoID, password string) bool {
	return s.Verify(ctx, memoID, password) == nil
}

// Update re-verifies the memo password and, only on success, applies the
// partial change set and refreshes the update timestamp. On any verification
// failure nothing is mutated and ErrorUnauthorized is returned; the caller
// cannot tell a missing memo from a wrong password.
func (s *MemoService) Update(ctx context.Context, memoID, password string, changes models.MemoChanges) (*models.Memo, error) {
	if memoID == "" || password == "" {
		return nil, common.ErrMissingInput
	}
	if changes.Content != nil {
		trimmed := strings.TrimSpace(*changes.Content)
		if trimmed == "" {
			return nil, common.ErrMissingInput
		}
		if utf8.RuneCountInString(trimmed) > common.MaxMemoContentLen {
			return nil, common.ErrContentTooLong
		}
		changes.Content = &trimmed
	}
	if changes.Color != nil && !changes.Color.Valid() {
		return nil, common.ErrInvalidColor
	}

	var updated *models.Memo
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Memos(tx)
		if err := s.verifyWithRepo(ctx, repo, memoID, password); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return err
		}
		var err error
		updated, err = repo.Update(ctx, memoID, changes)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete re-verifies the memo password and permanently removes the record.
// Same gate-then-mutate contract as Update.
func (s *MemoService) Delete(ctx context.Context, memoID, password string) error {
	if memoID == "" || password == "" {
		return common.ErrMissingInput
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Memos(tx)
		if err := s.verifyWithRepo(ctx, repo, memoID, password); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return err
		}
		return repo.Delete(ctx, memoID)
	})
}

func (s *MemoService) verifyWithRepo(ctx context.Context, repo memos.Repository, memoID, password string) error {
	hash, err := repo.GetPasswordHash(ctx, memoID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	ok, err := s.hasher.Verify([]byte(password), hash)
	if err != nil {
		return common.ErrorInternal
	}
	if !ok {
		return common.ErrorUnauthorized
	}
	return nil
}
