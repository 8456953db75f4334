package common

// SessionStateKey is the fixed key under which the client stores its
// ephemeral unlock state.
const SessionStateKey = "wall-paper-auth"

// MinMemoPasswordLen is the minimum accepted length for a per-memo password.
const MinMemoPasswordLen = 4

// MaxMemoContentLen bounds memo content, in runes.
const MaxMemoContentLen = 500
