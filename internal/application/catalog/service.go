// Package catalog serves the read-only graduate and research listings.
package catalog

import (
	"context"

	"github.com/campus-books-server/internal/application/imageref"
	"github.com/campus-books-server/internal/domain"
)

type Service interface {
	Graduates(ctx context.Context) ([]domain.Graduate, error)
	Research(ctx context.Context) ([]domain.Research, error)
}

type graduateStore interface {
	Scan(ctx context.Context) ([]domain.Graduate, error)
}

type researchStore interface {
	Scan(ctx context.Context) ([]domain.Research, error)
}

type service struct {
	graduates graduateStore
	research  researchStore
	images    imageref.Resolver
}

func NewService(graduates graduateStore, research researchStore, images imageref.Resolver) Service {
	return &service{graduates: graduates, research: research, images: images}
}

func (s *service) Graduates(ctx context.Context) ([]domain.Graduate, error) {
	list, err := s.graduates.Scan(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Image = imageref.Resolve(ctx, s.images, list[i].Image)
	}
	return list, nil
}

func (s *service) Research(ctx context.Context) ([]domain.Research, error) {
	return s.research.Scan(ctx)
}
