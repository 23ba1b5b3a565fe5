package service

import (
	"context"
	"fmt"

	"shopfront/internal/auth"
	"shopfront/internal/errors"
	"shopfront/internal/repository"
	"shopfront/internal/session"
)

// AuthService handles login and logout against the credential store and the
// session store.
type AuthService interface {
	// Login verifies credentials and opens an authenticated session. Any
	// credential mismatch returns errors.ErrInvalidCredentials; an unknown
	// username and a wrong password are indistinguishable. When remember is
	// set a signed remember token is returned alongside the session.
	Login(ctx context.Context, username, password string, remember bool) (*session.Session, string, error)

	// Logout destroys the session unconditionally. Destroying an absent or
	// already-destroyed session is a no-op.
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	userRepo repository.UserRepository
	verifier *auth.Verifier
	sessions session.Store
	remember *auth.RememberToken
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, verifier *auth.Verifier, sessions session.Store, remember *auth.RememberToken) AuthService {
	return &authService{
		userRepo: userRepo,
		verifier: verifier,
		sessions: sessions,
		remember: remember,
	}
}

func (s *authService) Login(ctx context.Context, username, password string, remember bool) (*session.Session, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// transport failure, not an auth failure
		return nil, "", fmt.Errorf("credential lookup: %w", err)
	}

	// The verifier runs even for an unknown username, against an empty hash,
	// so found and not-found attempts cost the same.
	storedHash := ""
	if user != nil {
		storedHash = user.PasswordHash
	}
	if !s.verifier.Verify(password, storedHash) {
		return nil, "", errors.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	var rememberToken string
	if remember && s.remember != nil {
		rememberToken, err = s.remember.Issue(username)
		if err != nil {
			return nil, "", fmt.Errorf("issue remember token: %w", err)
		}
	}

	return sess, rememberToken, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}
