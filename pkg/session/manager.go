package session

import (
	"context"
	"sync"

	"catalog-chatbot-be/internal/pkg/logger"
)

// Manager owns session state transitions and serializes flows per user.
type Manager struct {
	store  Store
	logger logger.ILogger
	locks  sync.Map // user id -> *sync.Mutex
}

// NewManager creates a new session manager.
func NewManager(store Store, log logger.ILogger) *Manager {
	return &Manager{store: store, logger: log}
}

func (m *Manager) userLock(userID string) *sync.Mutex {
	v, _ := m.locks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Do runs fn with exclusive ownership of the user's session. The session is
// loaded (or created Idle), fn may mutate it, and the result is persisted
// before the lock is released, so two turns for the same user never
// interleave. Flows for different users run independently.
func (m *Manager) Do(ctx context.Context, userID string, fn func(s *Session) error) error {
	mu := m.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	s, err := m.store.Get(ctx, userID)
	if err != nil {
		// A broken session store must not break the conversation; the user
		// simply restarts from Idle.
		m.logger.Warn("SessionManager", "Failed to load session, starting from Idle", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		s = nil
	}
	if s == nil {
		s = &Session{UserID: userID, State: StateIdle}
	}

	fnErr := fn(s)

	if s.State == StateIdle {
		if err := m.store.Delete(ctx, userID); err != nil {
			m.logger.Warn("SessionManager", "Failed to discard completed session", map[string]interface{}{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	} else if err := m.store.Save(ctx, s); err != nil {
		m.logger.Warn("SessionManager", "Failed to persist session", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	return fnErr
}

// Transition moves the session to a new state.
func (m *Manager) Transition(s *Session, to State) {
	from := s.State
	s.State = to
	m.logger.Debug("SessionManager", "State transition", map[string]interface{}{
		"user_id": s.UserID,
		"from":    string(from),
		"to":      string(to),
	})
}

// State reports the user's current state without mutating it.
func (m *Manager) State(ctx context.Context, userID string) State {
	var current State
	_ = m.Do(ctx, userID, func(s *Session) error {
		current = s.State
		return nil
	})
	return current
}
