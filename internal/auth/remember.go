package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// RememberTokenExpiry is the lifetime of a remember-me token.
const RememberTokenExpiry = 7 * 24 * time.Hour

// RememberClaims are the claims carried by a remember-me token.
type RememberClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// RememberToken issues and validates the signed long-lived token that lets a
// returning browser open a fresh session without re-entering credentials.
type RememberToken struct {
	secret []byte
}

// NewRememberToken creates a remember-token service with the given secret.
func NewRememberToken(secret string) *RememberToken {
	return &RememberToken{secret: []byte(secret)}
}

// Issue signs a remember token for username.
func (t *RememberToken) Issue(username string) (string, error) {
	claims := &RememberClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(RememberTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses and verifies a remember token and returns its claims.
func (t *RememberToken) Validate(tokenString string) (*RememberClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &RememberClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*RememberClaims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, errors.New("invalid remember token")
	}

	return claims, nil
}
