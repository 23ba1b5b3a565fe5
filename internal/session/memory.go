package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const cleanupInterval = time.Minute

// MemoryStore keeps sessions in process memory. Suits a single instance;
// multi-instance deployments should use the Redis store instead.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates an in-memory store with the given session TTL and
// starts its expiry sweeper.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Create issues a new authenticated session for username.
func (s *MemoryStore) Create(ctx context.Context, username string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &Session{
		ID:            uuid.New().String(),
		Username:      username,
		Authenticated: true,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

// Get retrieves a live session, or (nil, nil) when absent or expired.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if sess.Expired() {
		delete(s.sessions, sessionID)
		return nil, nil
	}

	copied := *sess
	return &copied, nil
}

// Delete destroys a session; deleting an absent session is a no-op.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// Close stops the expiry sweeper.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, sess := range s.sessions {
				if now.After(sess.ExpiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}
