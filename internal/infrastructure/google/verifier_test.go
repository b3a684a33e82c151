package google

import (
	"context"
	"errors"
	"testing"

	"github.com/campus-books-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func stubVerifier(p *idtoken.Payload, err error) (*Verifier, *string) {
	var gotAudience string
	v := &Verifier{clientID: "client-123", validate: func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		return p, err
	}}
	return v, &gotAudience
}

func TestVerify_ExtractsClaims(t *testing.T) {
	v, aud := stubVerifier(&idtoken.Payload{Subject: "sub-1", Claims: map[string]interface{}{
		"email":          "alice@example.com",
		"email_verified": true,
		"name":           "Alice",
	}}, nil)

	p, err := v.Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "client-123", *aud)
	assert.Equal(t, &Payload{Sub: "sub-1", Email: "alice@example.com", EmailVerified: true, Name: "Alice"}, p)
}

func TestVerify_StringEmailVerified(t *testing.T) {
	v, _ := stubVerifier(&idtoken.Payload{Claims: map[string]interface{}{"email_verified": "true"}}, nil)
	p, err := v.Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.True(t, p.EmailVerified)
}

func TestVerify_InvalidTokenIsUnauthorized(t *testing.T) {
	v, _ := stubVerifier(nil, errors.New("idtoken: token expired"))
	_, err := v.Verify(context.Background(), "tok")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
