package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"catalog-chatbot-be/pkg/session"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "chat:session:"

// SessionRepository keeps conversation state in Redis so multiple instances
// can share it. Values are JSON-encoded sessions with a TTL.
type SessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionRepository(rdb *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		rdb: rdb,
		ttl: ttl,
	}
}

func (r *SessionRepository) Get(ctx context.Context, userID string) (*session.Session, error) {
	data, err := r.rdb.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var s session.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyPrefix+s.UserID, data, r.ttl).Err()
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	return r.rdb.Del(ctx, keyPrefix+userID).Err()
}
