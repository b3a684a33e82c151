package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/campus-books-server/internal/domain"
	"github.com/campus-books-server/internal/infrastructure/google"
)

type Service interface {
	// IssueToken returns a signed bearer token for the requested identity.
	IssueToken(ctx context.Context, req domain.TokenRequest) (string, error)
}

type tokenSigner interface {
	Sign(email, name string) (string, error)
}

type identityVerifier interface {
	Verify(ctx context.Context, token string) (*google.Payload, error)
}

type service struct {
	signer   tokenSigner
	verifier identityVerifier
}

// NewService builds the token issuer. verifier may be nil, in which case the
// requested email is trusted as-is.
func NewService(signer tokenSigner, verifier identityVerifier) Service {
	return &service{signer: signer, verifier: verifier}
}

func (s *service) IssueToken(ctx context.Context, req domain.TokenRequest) (string, error) {
	name := req.Name
	if s.verifier != nil {
		if req.IDToken == "" {
			return "", fmt.Errorf("id_token required: %w", domain.ErrUnauthorized)
		}
		p, err := s.verifier.Verify(ctx, req.IDToken)
		if err != nil {
			return "", err
		}
		if !p.EmailVerified || !strings.EqualFold(p.Email, req.Email) {
			return "", fmt.Errorf("id_token does not match email: %w", domain.ErrUnauthorized)
		}
		if name == "" {
			name = p.Name
		}
	}
	return s.signer.Sign(req.Email, name)
}
