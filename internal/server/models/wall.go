// Package models defines the persistent record kinds of the note board:
// the single shared Wall and its Memos.
package models

import "time"

// Wall is the shared board. Created once at seed time, effectively immutable
// afterwards. PasswordHash is the bcrypt token of the shared passphrase and is
// never serialized.
type Wall struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
