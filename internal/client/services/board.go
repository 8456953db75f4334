package services

import (
	"context"

	"github.com/mkalens/wallpaper/internal/client/client"
	"github.com/mkalens/wallpaper/internal/client/models"
)

// BoardService holds the ordered memo list for the unlocked wall and keeps it
// consistent with the server after each mutation without a full reload.
// Instances are meant for single-goroutine use.
type BoardService interface {
	Load(ctx context.Context, wallID string) error
	Refetch(ctx context.Context) error
	Memos() []*models.Memo
	Find(memoID string) *models.Memo
	Add(ctx context.Context, content, color, password string) (*models.Memo, error)
	Verify(ctx context.Context, memoID, password string) error
	Update(ctx context.Context, memoID, password string, content *string, color *string, isPinned *bool) (*models.Memo, error)
	Delete(ctx context.Context, memoID, password string) error
}

type boardService struct {
	client client.Client
	wallID string
	memos  []*models.Memo
}

func NewBoardService(c client.Client) BoardService {
	return &boardService{client: c}
}

func (s *boardService) Load(ctx context.Context, wallID string) error {
	s.wallID = wallID
	return s.Refetch(ctx)
}

// Refetch reloads the list from the server, superseding any local
// reconciliation. Used on startup and as error recovery.
func (s *boardService) Refetch(ctx context.Context) error {
	memos, err := s.client.ListMemos(ctx, s.wallID)
	if err != nil {
		return err
	}
	s.memos = memos
	return nil
}

func (s *boardService) Memos() []*models.Memo {
	return s.memos
}

func (s *boardService) Find(memoID string) *models.Memo {
	for _, m := range s.memos {
		if m.ID == memoID {
			return m
		}
	}
	return nil
}

// Add creates the memo on the server and inserts it at the head of the
// unpinned group, after any pinned memos. New memos are never pinned, so
// this preserves the server ordering.
func (s *boardService) Add(ctx context.Context, content, color, password string) (*models.Memo, error) {
	memo, err := s.client.CreateMemo(ctx, s.wallID, content, color, password)
	if err != nil {
		return nil, err
	}

	pos := 0
	for pos < len(s.memos) && s.memos[pos].IsPinned {
		pos++
	}

	s.memos = append(s.memos, nil)
	copy(s.memos[pos+1:], s.memos[pos:])
	s.memos[pos] = memo

	return memo, nil
}

func (s *boardService) Verify(ctx context.Context, memoID, password string) error {
	return s.client.VerifyMemo(ctx, memoID, password)
}

// Update replaces the memo in place without re-sorting. A pin toggle only
// moves the memo on the next Refetch.
func (s *boardService) Update(ctx context.Context, memoID, password string, content *string, color *string, isPinned *bool) (*models.Memo, error) {
	memo, err := s.client.UpdateMemo(ctx, memoID, password, content, color, isPinned)
	if err != nil {
		return nil, err
	}

	for i, m := range s.memos {
		if m.ID == memoID {
			s.memos[i] = memo
			break
		}
	}
	return memo, nil
}

func (s *boardService) Delete(ctx context.Context, memoID, password string) error {
	if err := s.client.DeleteMemo(ctx, memoID, password); err != nil {
		return err
	}

	kept := s.memos[:0]
	for _, m := range s.memos {
		if m.ID != memoID {
			kept = append(kept, m)
		}
	}
	s.memos = kept
	return nil
}
