package session

import "context"

// State is the position of a user's conversation flow.
type State string

const (
	// StateIdle is the initial and terminal state of every flow.
	StateIdle State = "IDLE"

	// StateAwaitingProductName means the next free-text message is a
	// product name to insert.
	StateAwaitingProductName State = "AWAITING_PRODUCT_NAME"

	// StateAwaitingSearchQuery means the next free-text message is a
	// search query.
	StateAwaitingSearchQuery State = "AWAITING_SEARCH_QUERY"
)

// Session is the per-user conversation state. Exactly one exists per user at
// any time; it is created lazily on first interaction and discarded once the
// flow returns to Idle.
type Session struct {
	UserID string `json:"user_id"`
	State  State  `json:"state"`
}

// Store abstracts ephemeral session storage.
// Implementations: in-memory cache (single instance) or Redis (multi-instance).
type Store interface {
	// Get returns nil when no session exists for the user.
	Get(ctx context.Context, userID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, userID string) error
}
