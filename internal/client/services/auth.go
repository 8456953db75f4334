// Package services contains application services for the board client:
// the session service (unlock state persisted locally) and the board
// service (the ordered memo list for the unlocked wall).
package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkalens/wallpaper/internal/client/client"
	"github.com/mkalens/wallpaper/internal/client/models"
	"github.com/mkalens/wallpaper/internal/client/repositories/session"
	"github.com/mkalens/wallpaper/internal/common"
)

// SessionService tracks whether the board is unlocked across runs.
//
// Contract:
//   - Unlock: authenticate against the server and persist the unlock state.
//   - Current: return the persisted state; absent or corrupt data reads as locked.
//   - Logout: wipe the persisted state.
type SessionService interface {
	Unlock(ctx context.Context, password string) (*models.AuthState, error)
	Current(ctx context.Context) (*models.AuthState, error)
	Logout(ctx context.Context) error
}

type sessionService struct {
	client      client.Client
	sessionRepo session.Repository
}

func NewSessionService(c client.Client, repo session.Repository) SessionService {
	return &sessionService{client: c, sessionRepo: repo}
}

func (s *sessionService) Unlock(ctx context.Context, password string) (*models.AuthState, error) {
	state, err := s.client.Unlock(ctx, password)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("state encoding error: %w", err)
	}
	if err := s.sessionRepo.Set(ctx, common.SessionStateKey, data); err != nil {
		return nil, fmt.Errorf("state saving error: %w", err)
	}

	return state, nil
}

// Current never fails on bad local data: anything unreadable means locked.
func (s *sessionService) Current(ctx context.Context) (*models.AuthState, error) {
	data, err := s.sessionRepo.Get(ctx, common.SessionStateKey)
	if err != nil {
		return nil, fmt.Errorf("state loading error: %w", err)
	}
	if data == nil {
		return &models.AuthState{}, nil
	}

	var state models.AuthState
	if err := json.Unmarshal(data, &state); err != nil {
		return &models.AuthState{}, nil
	}
	return &state, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Delete(ctx, common.SessionStateKey); err != nil {
		return fmt.Errorf("state clearing error: %w", err)
	}
	return nil
}
