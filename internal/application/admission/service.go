package admission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campus-books-server/internal/application/imageref"
	"github.com/campus-books-server/internal/domain"
	"github.com/campus-books-server/internal/pkg/id"
)

type Service interface {
	// Submit stores an application. The caller has already checked that
	// req.StudentEmail belongs to the authenticated user.
	Submit(ctx context.Context, req domain.CreateAdmissionRequest) (*domain.Admission, error)
	ListByStudent(ctx context.Context, email string) ([]domain.Admission, error)
}

type admissionStore interface {
	Create(ctx context.Context, a *domain.Admission) error
	ListByStudent(ctx context.Context, email string) ([]domain.Admission, error)
}

type collegeStore interface {
	Get(ctx context.Context, collegeID string) (*domain.College, error)
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type service struct {
	repo     admissionStore
	colleges collegeStore
	images   imageref.Resolver
	mailer   mailer
	sms      smsSender
	now      func() time.Time
}

type ServiceDeps struct {
	AdmissionRepo admissionStore
	CollegeRepo   collegeStore
	Images        imageref.Resolver
	// Mailer and SMSSender are optional; nil disables that confirmation channel.
	Mailer    mailer
	SMSSender smsSender
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:     deps.AdmissionRepo,
		colleges: deps.CollegeRepo,
		images:   deps.Images,
		mailer:   deps.Mailer,
		sms:      deps.SMSSender,
		now:      time.Now,
	}
}

func (s *service) Submit(ctx context.Context, req domain.CreateAdmissionRequest) (*domain.Admission, error) {
	if !id.Valid(req.CollegeID) {
		return nil, fmt.Errorf("malformed college id %q: %w", req.CollegeID, domain.ErrBadRequest)
	}
	if req.DateOfBirth != "" {
		if _, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
			return nil, fmt.Errorf("date_of_birth must be in YYYY-MM-DD format: %w", domain.ErrBadRequest)
		}
	}
	c, err := s.colleges.Get(ctx, req.CollegeID)
	if err != nil {
		return nil, err
	}
	a := &domain.Admission{
		StudentEmail:  req.StudentEmail,
		CollegeID:     req.CollegeID,
		CollegeName:   c.Name,
		CandidateName: req.CandidateName,
		Subject:       req.Subject,
		Phone:         req.Phone,
		Address:       req.Address,
		DateOfBirth:   req.DateOfBirth,
		Image:         req.Image,
		Reviewed:      false,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.confirm(ctx, a)
	return a, nil
}

func (s *service) ListByStudent(ctx context.Context, email string) ([]domain.Admission, error) {
	list, err := s.repo.ListByStudent(ctx, email)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Image = imageref.Resolve(ctx, s.images, list[i].Image)
	}
	return list, nil
}

// confirm notifies the candidate. Delivery failures are logged only; the
// admission is already stored.
func (s *service) confirm(ctx context.Context, a *domain.Admission) {
	msg := fmt.Sprintf("Hi %s, your application to %s for %s has been received.", a.CandidateName, a.CollegeName, a.Subject)
	if s.mailer != nil {
		if err := s.mailer.SendEmail(a.StudentEmail, "Admission received: "+a.CollegeName, msg); err != nil {
			slog.WarnContext(ctx, "admission email not sent", "to", a.StudentEmail, "err", err)
		}
	}
	if s.sms != nil && a.Phone != "" {
		if err := s.sms.SendSMS(ctx, a.Phone, msg); err != nil {
			slog.WarnContext(ctx, "admission sms not sent", "to", a.Phone, "err", err)
		}
	}
}
