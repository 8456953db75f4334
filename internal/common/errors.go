// Package common defines shared constants and sentinel errors used across
// the client and server layers of Wallpaper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors raised before any store round trip.
	ErrMissingInput   = errors.New("missing input")
	ErrWeakPassword   = errors.New("password too short")
	ErrInvalidColor   = errors.New("invalid color")
	ErrContentTooLong = errors.New("content too long")

	// ErrCorruptHash reports a stored hash token that bcrypt cannot parse.
	// This is a data-corruption signal, never a user-facing auth failure.
	ErrCorruptHash = errors.New("corrupt hash token")
)
