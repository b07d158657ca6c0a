package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt with a fixed work factor. The zero value is not
// usable; construct with NewPasswordHasher.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of plain. Empty input comes back empty, and
// input that already is a bcrypt hash comes back unchanged, so callers can
// hash unconditionally without double-hashing stored values.
func (h PasswordHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	if IsBcryptHash(plain) {
		return plain, nil
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	return string(bytes), err
}

// Verify compares a plain password with its stored hash.
func (h PasswordHasher) Verify(plain, hash string) bool {
	if plain == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IsBcryptHash reports whether s looks like bcrypt output ($2a$, $2b$, $2y$).
func IsBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
