package client

import (
	"context"

	"github.com/mkalens/wallpaper/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the board server.
type Client interface {
	Unlock(ctx context.Context, password string) (*models.AuthState, error)
	CreateMemo(ctx context.Context, wallID, content, color, password string) (*models.Memo, error)
	ListMemos(ctx context.Context, wallID string) ([]*models.Memo, error)
	VerifyMemo(ctx context.Context, memoID, password string) error
	UpdateMemo(ctx context.Context, memoID, password string, content *string, color *string, isPinned *bool) (*models.Memo, error)
	DeleteMemo(ctx context.Context, memoID, password string) error
}
