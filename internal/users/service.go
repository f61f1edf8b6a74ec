package users

import (
	"context"

	"github.com/tasknest/tasknest-api/internal/apperr"
	"github.com/tasknest/tasknest-api/internal/models"
)

// Service encapsulates user-related business logic
type Service struct {
	repo UserRepository
}

func NewService(r UserRepository) *Service {
	return &Service{repo: r}
}

// Create validates the required fields and inserts a user document.
// Role defaults to "user" when not supplied.
func (s *Service) Create(ctx context.Context, name, email, role string) (*models.User, error) {
	if name == "" || email == "" {
		return nil, apperr.Invalid("Name and email are required")
	}
	if role == "" {
		role = "user"
	}
	u := &models.User{
		Name:  name,
		Email: email,
		Role:  role,
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}
