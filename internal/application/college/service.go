package college

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/campus-books-server/internal/application/imageref"
	"github.com/campus-books-server/internal/domain"
	"github.com/campus-books-server/internal/pkg/id"
	"github.com/campus-books-server/internal/pkg/rating"
)

// PopularCount is how many colleges Popular returns.
const PopularCount = 3

type Service interface {
	List(ctx context.Context, page domain.PageRequest) ([]domain.RatedCollege, error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, collegeID string) (*domain.RatedCollege, error)
	Search(ctx context.Context, name string) ([]domain.RatedCollege, error)
	Popular(ctx context.Context) ([]domain.RatedCollege, error)
}

type collegeStore interface {
	Get(ctx context.Context, collegeID string) (*domain.College, error)
	Scan(ctx context.Context) ([]domain.College, error)
	SearchByName(ctx context.Context, needle string) ([]domain.College, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo   collegeStore
	images imageref.Resolver
}

// NewService builds the college reader. images may be nil.
func NewService(repo collegeStore, images imageref.Resolver) Service {
	return &service{repo: repo, images: images}
}

func (s *service) List(ctx context.Context, page domain.PageRequest) ([]domain.RatedCollege, error) {
	all, err := s.sorted(ctx)
	if err != nil {
		return nil, err
	}
	// Compare page numbers first so Offset never runs past the last page.
	if page.Page < 1 || page.Limit < 1 || page.Page-1 >= (len(all)+page.Limit-1)/page.Limit {
		return []domain.RatedCollege{}, nil
	}
	start := page.Offset()
	end := min(start+page.Limit, len(all))
	return s.present(ctx, rating.Annotate(all[start:end])), nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *service) Get(ctx context.Context, collegeID string) (*domain.RatedCollege, error) {
	if !id.Valid(collegeID) {
		return nil, fmt.Errorf("malformed college id %q: %w", collegeID, domain.ErrBadRequest)
	}
	c, err := s.repo.Get(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	rc := Present(ctx, s.images, *c)
	return &rc, nil
}

func (s *service) Search(ctx context.Context, name string) ([]domain.RatedCollege, error) {
	found, err := s.repo.SearchByName(ctx, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return nil, err
	}
	sortByID(found)
	return s.present(ctx, rating.Annotate(found)), nil
}

// Popular ranks every college by average rating. Colleges without reviews
// rate 0 and ties keep insertion order.
func (s *service) Popular(ctx context.Context) ([]domain.RatedCollege, error) {
	all, err := s.sorted(ctx)
	if err != nil {
		return nil, err
	}
	return s.present(ctx, rating.Top(all, PopularCount)), nil
}

func (s *service) sorted(ctx context.Context) ([]domain.College, error) {
	all, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sortByID(all)
	return all, nil
}

func (s *service) present(ctx context.Context, rated []domain.RatedCollege) []domain.RatedCollege {
	for i := range rated {
		rated[i].Image = imageref.Resolve(ctx, s.images, rated[i].Image)
	}
	return rated
}

// Present annotates c with its average rating and a loadable image URL.
func Present(ctx context.Context, images imageref.Resolver, c domain.College) domain.RatedCollege {
	c.Image = imageref.Resolve(ctx, images, c.Image)
	return domain.RatedCollege{College: c, AverageRating: rating.Average(c.Reviews)}
}

// sortByID orders colleges by ULID, i.e. by insertion time.
func sortByID(cs []domain.College) {
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].CollegeID < cs[j].CollegeID })
}
