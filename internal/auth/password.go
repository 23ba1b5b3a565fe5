package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// placeholderHash is compared against when a stored hash is empty or
// malformed, so that "username not found" costs one bcrypt comparison just
// like a wrong password does.
var placeholderHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder-no-such-user"), bcryptCost)

// Verifier checks candidate passwords against stored bcrypt hashes.
// Side-effect free.
type Verifier struct{}

// NewVerifier creates a password verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify reports whether candidate matches storedHash. An empty or otherwise
// unparsable stored hash is never a match, but still burns a full bcrypt
// comparison against a placeholder hash to keep found and not-found lookups
// at uniform latency.
func (v *Verifier) Verify(candidate, storedHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate))
	if err == nil {
		return true
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false
	}
	// storedHash was not a bcrypt hash at all
	_ = bcrypt.CompareHashAndPassword(placeholderHash, []byte(candidate))
	return false
}

// HashPassword produces a bcrypt hash for seeding and tests. The storefront
// itself never writes user rows.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
