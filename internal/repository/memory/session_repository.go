package memory

import (
	"context"
	"time"

	"catalog-chatbot-be/pkg/session"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Sessions that stay abandoned for the TTL are purged; a returning user
	// simply starts a fresh Idle flow.
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Get(_ context.Context, userID string) (*session.Session, error) {
	if x, found := r.cache.Get(userID); found {
		return x.(*session.Session), nil
	}
	return nil, nil
}

func (r *SessionRepository) Save(_ context.Context, s *session.Session) error {
	r.cache.Set(s.UserID, s, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, userID string) error {
	r.cache.Delete(userID)
	return nil
}
