package user

import (
	"context"
	"time"

	"github.com/campus-books-server/internal/domain"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldName    = "name"
	fieldPhone   = "phone"
	fieldAddress = "address"
	fieldImage   = "image"
)

type Service interface {
	Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
	Get(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, email string, req domain.UpdateUserRequest) (*domain.User, error)
}

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, email string, updates map[string]interface{}) (*domain.User, error)
}

type service struct {
	repo userStore
}

func NewService(repo userStore) Service {
	return &service{repo: repo}
}

// Register stores a new user. A duplicate email yields domain.ErrConflict and
// leaves the existing record untouched.
func (s *service) Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	now := time.Now().UTC()
	u := &domain.User{
		Email:     req.Email,
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		Image:     req.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Get(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.Get(ctx, email)
}

// Update changes only the fields present in req.
func (s *service) Update(ctx context.Context, email string, req domain.UpdateUserRequest) (*domain.User, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates[fieldName] = *req.Name
	}
	if req.Phone != nil {
		updates[fieldPhone] = *req.Phone
	}
	if req.Address != nil {
		updates[fieldAddress] = *req.Address
	}
	if req.Image != nil {
		updates[fieldImage] = *req.Image
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, email)
	}
	return s.repo.Update(ctx, email, updates)
}
