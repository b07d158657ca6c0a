package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService(secret string, now time.Time) *TokenService {
	s := NewTokenService([]byte(secret), DefaultTokenTTL)
	s.now = func() time.Time { return now }
	return s
}

func TestIssueValidateRoundTrip(t *testing.T) {
	s := NewTokenService([]byte("test-secret"), DefaultTokenTTL)

	token, err := s.Issue(42, "ana@x.com", "PATIENT")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := s.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "ana@x.com", claims.Email())
	assert.Equal(t, "PATIENT", claims.Role)
}

func TestValidateExpiryBoundary(t *testing.T) {
	issuedAt := time.Now()
	s := testTokenService("test-secret", issuedAt)

	token, err := s.Issue(1, "a@x.com", "ADMIN")
	require.NoError(t, err)

	// Just inside the 10h window.
	s.now = func() time.Time { return issuedAt.Add(DefaultTokenTTL - time.Minute) }
	_, err = s.Validate(token)
	assert.NoError(t, err)

	// Just past it.
	s.now = func() time.Time { return issuedAt.Add(DefaultTokenTTL + time.Minute) }
	_, err = s.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	s := NewTokenService([]byte("test-secret"), DefaultTokenTTL)

	token, err := s.Issue(1, "a@x.com", "ADMIN")
	require.NoError(t, err)

	_, err = s.Validate(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), DefaultTokenTTL)
	verifier := NewTokenService([]byte("secret-b"), DefaultTokenTTL)

	token, err := issuer.Issue(1, "a@x.com", "ADMIN")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	s := NewTokenService([]byte("test-secret"), DefaultTokenTTL)

	for _, tokenStr := range []string{"", "not-a-token", "a.b.c"} {
		_, err := s.Validate(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenStr)
	}
}

func TestIssueFailsWithoutSecret(t *testing.T) {
	s := NewTokenService(nil, DefaultTokenTTL)

	_, err := s.Issue(1, "a@x.com", "ADMIN")
	assert.Error(t, err)
}
