package jwtinfra

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newClockedProvider(t *testing.T) (*Provider, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	p, err := NewProvider("test-secret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)
	return p, clock
}

func TestNewProvider_RejectsEmptySecret(t *testing.T) {
	_, err := NewProvider("", time.Hour)
	assert.Error(t, err)
	_, err = NewProvider("s", 0)
	assert.Error(t, err)
}

func TestSignVerify_RoundTrip(t *testing.T) {
	p, clock := newClockedProvider(t)
	signed, err := p.Sign("a@x.com", "Alice")
	require.NoError(t, err)

	clock.t = clock.t.Add(59 * time.Minute)
	claims, err := p.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestVerify_FailsAfterExpiry(t *testing.T) {
	p, clock := newClockedProvider(t)
	signed, err := p.Sign("a@x.com", "")
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Hour + time.Second)
	_, err = p.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_TamperedAndForeignTokensLookAlike(t *testing.T) {
	p, _ := newClockedProvider(t)
	signed, err := p.Sign("a@x.com", "")
	require.NoError(t, err)

	other, err := NewProvider("other-secret", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Sign("a@x.com", "")
	require.NoError(t, err)

	for _, tok := range []string{signed + "x", foreign, "not-a-token", ""} {
		_, err := p.Verify(tok)
		assert.Equal(t, ErrInvalidToken, err, tok)
	}
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	p, clock := newClockedProvider(t)
	claims := Claims{
		Email: "a@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = p.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_RequiresExpiry(t *testing.T) {
	p, _ := newClockedProvider(t)
	unexpiring, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Email: "a@x.com"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = p.Verify(unexpiring)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
