package review

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/campus-books-server/internal/application/college"
	"github.com/campus-books-server/internal/application/imageref"
	"github.com/campus-books-server/internal/domain"
	"github.com/campus-books-server/internal/pkg/id"
)

type Service interface {
	// List flattens every college's embedded reviews.
	List(ctx context.Context) ([]domain.FlatReview, error)
	// Append adds rv to the college and marks the reviewer's admission to it
	// as reviewed. When the review is stored but the admission update fails
	// the result is returned together with domain.ErrPartialFailure.
	Append(ctx context.Context, collegeID string, rv domain.Review) (*domain.ReviewResult, error)
}

type collegeStore interface {
	Scan(ctx context.Context) ([]domain.College, error)
	AppendReview(ctx context.Context, collegeID string, rv domain.Review) (*domain.College, error)
}

type admissionStore interface {
	MarkReviewed(ctx context.Context, email, collegeID string) (bool, error)
}

type service struct {
	colleges   collegeStore
	admissions admissionStore
	images     imageref.Resolver
	now        func() time.Time
}

func NewService(colleges collegeStore, admissions admissionStore, images imageref.Resolver) Service {
	return &service{colleges: colleges, admissions: admissions, images: images, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]domain.FlatReview, error) {
	all, err := s.colleges.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CollegeID < all[j].CollegeID })
	out := []domain.FlatReview{}
	for _, c := range all {
		for _, rv := range c.Reviews {
			out = append(out, domain.FlatReview{CollegeID: c.CollegeID, CollegeName: c.Name, Review: rv})
		}
	}
	return out, nil
}

func (s *service) Append(ctx context.Context, collegeID string, rv domain.Review) (*domain.ReviewResult, error) {
	if !id.Valid(collegeID) {
		return nil, fmt.Errorf("malformed college id %q: %w", collegeID, domain.ErrBadRequest)
	}
	rv.CreatedAt = s.now().UTC()

	// Phase 1: the review itself.
	c, err := s.colleges.AppendReview(ctx, collegeID, rv)
	if err != nil {
		return nil, err
	}
	rc := college.Present(ctx, s.images, *c)
	result := &domain.ReviewResult{College: &rc}

	// Phase 2: the reviewer's admission flag. No matching admission is fine.
	updated, err := s.admissions.MarkReviewed(ctx, rv.ReviewerEmail, collegeID)
	if err != nil {
		slog.ErrorContext(ctx, "review stored but admission flag not updated",
			"college_id", collegeID, "reviewer_email", rv.ReviewerEmail, "err", err)
		return result, fmt.Errorf("review saved, admission status not updated: %w", domain.ErrPartialFailure)
	}
	result.AdmissionUpdated = updated
	return result, nil
}
