// Package models holds client-side data structures: memos as the server
// returns them and the locally persisted unlock state.
package models

import "time"

// Memo is a sticky note as serialized by the server. The server never
// includes password hashes in responses.
type Memo struct {
	ID        string    `json:"id"`
	WallID    string    `json:"wall_id"`
	Content   string    `json:"content"`
	Color     string    `json:"color"`
	IsPinned  bool      `json:"is_pinned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthState is the locally persisted unlock state for the board.
// The zero value means locked.
type AuthState struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	WallID          string `json:"wallId"`
	WallName        string `json:"wallName"`
}
