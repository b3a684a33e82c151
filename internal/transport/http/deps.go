package http

import (
	"context"

	"github.com/campus-books-server/internal/application/imageref"
	"github.com/campus-books-server/internal/domain"
	"github.com/campus-books-server/internal/infrastructure/google"
	jwtinfra "github.com/campus-books-server/internal/infrastructure/jwt"
	"github.com/campus-books-server/internal/infrastructure/smtp"
	"github.com/campus-books-server/internal/infrastructure/sns"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, email string, updates map[string]interface{}) (*domain.User, error)
}

// CollegeRepository is the minimal interface the router requires from a college store.
type CollegeRepository interface {
	Get(ctx context.Context, collegeID string) (*domain.College, error)
	Scan(ctx context.Context) ([]domain.College, error)
	SearchByName(ctx context.Context, needle string) ([]domain.College, error)
	Count(ctx context.Context) (int, error)
	// AppendReview atomically appends rv and returns the updated college.
	AppendReview(ctx context.Context, collegeID string, rv domain.Review) (*domain.College, error)
}

// AdmissionRepository is the minimal interface the router requires from an admission store.
type AdmissionRepository interface {
	Create(ctx context.Context, a *domain.Admission) error
	ListByStudent(ctx context.Context, email string) ([]domain.Admission, error)
	// MarkReviewed reports false, without error, when no admission matches.
	MarkReviewed(ctx context.Context, email, collegeID string) (bool, error)
}

// GraduateRepository is the minimal interface the router requires from a graduate store.
type GraduateRepository interface {
	Scan(ctx context.Context) ([]domain.Graduate, error)
}

// ResearchRepository is the minimal interface the router requires from a research store.
type ResearchRepository interface {
	Scan(ctx context.Context) ([]domain.Research, error)
}

// IdentityVerifier proves the caller's email on token issue.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*google.Payload, error)
}

// Deps holds all infrastructure dependencies for the router. Images,
// Verifier, Mailer, SMSSender and Ready are optional and may be left nil.
type Deps struct {
	UserRepo      UserRepository
	CollegeRepo   CollegeRepository
	AdmissionRepo AdmissionRepository
	GraduateRepo  GraduateRepository
	ResearchRepo  ResearchRepository
	Images        imageref.Resolver
	Mailer        smtp.Mailer
	SMSSender     sns.SMSSender
	JWTProvider   *jwtinfra.Provider
	Verifier      IdentityVerifier
	// Ready backs GET /health-check/ready.
	Ready func(ctx context.Context) error
}
