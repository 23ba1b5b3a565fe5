// Package session holds the process-wide session state that gates protected
// routes. Sessions are created on successful login, read on every request and
// destroyed on logout or expiry.
package session

import (
	"context"
	"time"
)

// Session is the server-held state for one authenticated client.
type Session struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store is the session store contract. Get returns (nil, nil) for an absent
// or expired session so that Delete stays idempotent and callers treat
// missing state as unauthenticated, not as an error. Transport failures are
// returned as errors.
type Store interface {
	// Create issues a new authenticated session for username.
	Create(ctx context.Context, username string) (*Session, error)

	// Get retrieves a live session by ID, or (nil, nil) when none exists.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Delete destroys a session. Deleting an absent session is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
