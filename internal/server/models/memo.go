package models

import "time"

// Color is the memo color tag. The set is fixed; anything else is rejected
// at the service boundary.
type Color string

const (
	ColorYellow Color = "yellow"
	ColorPink   Color = "pink"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
)

// DefaultColor is used when a memo is created without an explicit color.
const DefaultColor = ColorYellow

// Valid reports whether c is one of the enumerated colors.
func (c Color) Valid() bool {
	switch c {
	case ColorYellow, ColorPink, ColorBlue, ColorGreen, ColorPurple:
		return true
	}
	return false
}

// Memo is one sticky note on the wall. PasswordHash is set once at creation
// and consumed only by the ownership-verification path; it is excluded from
// JSON and from every list/fetch query.
type Memo struct {
	ID           string    `json:"id"`
	WallID       string    `json:"wall_id"`
	Content      string    `json:"content"`
	Color        Color     `json:"color"`
	IsPinned     bool      `json:"is_pinned"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MemoChanges is the partial change set applied by an update. Nil fields are
// left untouched.
type MemoChanges struct {
	Content  *string
	Color    *Color
	IsPinned *bool
}
