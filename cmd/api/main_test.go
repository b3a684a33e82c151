package main

import (
	"testing"
	"time"

	"github.com/campus-books-server/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ReturnsStartupErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
	}{
		{"missing secret in production", config.Config{AppEnv: "production", JWTExpiry: time.Hour}},
		{"non-positive expiry", config.Config{AppEnv: "development", JWTSecret: "s3cret", JWTExpiry: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			err := run(&cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "jwt provider")
		})
	}
}

func TestNewJWTProvider_EphemeralSecretOutsideProduction(t *testing.T) {
	p, err := newJWTProvider(&config.Config{AppEnv: "development", JWTExpiry: time.Hour})
	require.NoError(t, err)

	token, err := p.Sign("alice@example.com", "")
	require.NoError(t, err)
	claims, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
}
