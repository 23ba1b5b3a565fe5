package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL matching the session expiry.
// Unlike the catalog cache this store is authoritative, so Redis errors
// propagate instead of degrading silently.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create issues a new authenticated session for username.
func (s *RedisStore) Create(ctx context.Context, username string) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:            uuid.New().String(),
		Username:      username,
		Authenticated: true,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), payload, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return sess, nil
}

// Get retrieves a live session, or (nil, nil) when absent or expired. Redis
// expires the key itself, but the embedded expiry is still checked in case
// the clocks disagree.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if sess.Expired() {
		return nil, nil
	}

	return &sess, nil
}

// Delete destroys a session; deleting an absent session is a no-op.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
