package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("test-secret")

	tok, err := svc.Issue("reader@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", email)
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("test-secret")

	// Issued tokens carry no exp claim, but one presented with a past
	// exp must be rejected as expired, not merely invalid.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "reader@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	tok, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyBadSignature(t *testing.T) {
	other := NewService("another-secret")
	tok, err := other.Issue("reader@example.com")
	require.NoError(t, err)

	_, err = NewService("test-secret").Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewService("test-secret")
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalid, "token %q", tok)
	}
}

func TestVerifyUnexpectedAlgorithm(t *testing.T) {
	svc := NewService("test-secret")

	raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "reader@example.com"})
	tok, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyMissingEmailClaim(t *testing.T) {
	svc := NewService("test-secret")

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "someone"})
	tok, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}
