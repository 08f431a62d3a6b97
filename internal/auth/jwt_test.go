package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = 30 * 24 * time.Hour

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", ttl)

	tok, exp, err := tm.Issue("user-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(ttl), exp, 2*time.Second)

	sub, err := tm.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issued}
	tm := NewTokenManager("test-secret", ttl).WithClock(clock.Now)

	tok, _, err := tm.Issue("user-1")
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{"fresh", issued, nil},
		{"one second before expiry", issued.Add(ttl - time.Second), nil},
		{"exactly at expiry", issued.Add(ttl), nil},
		{"one second after expiry", issued.Add(ttl + time.Second), ErrExpiredToken},
		{"a day after expiry", issued.Add(ttl + 24*time.Hour), ErrExpiredToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.t = tt.at
			sub, err := tm.Verify(tok)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, sub)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "user-1", sub)
		})
	}
}

func TestVerifyRejectsForeignTokens(t *testing.T) {
	tm := NewTokenManager("test-secret", ttl)
	other := NewTokenManager("other-secret", ttl)

	signedElsewhere, _, err := other.Issue("user-1")
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "user-1",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"garbage":         "not.a.token",
		"empty":           "",
		"wrong secret":    signedElsewhere,
		"alg none":        noneAlg,
		"missing subject": noSubject,
		"missing expiry":  noExpiry,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tm.Verify(tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
