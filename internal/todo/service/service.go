package service

import (
	"context"

	"github.com/tasknest/tasknest-api/internal/apperr"
	"github.com/tasknest/tasknest-api/internal/todo"
	"github.com/tasknest/tasknest-api/internal/todo/repository"
)

// Service defines the todo business operations used by the handler layer.
type Service interface {
	Create(ctx context.Context, title, description string, completed bool) (*todo.Todo, error)
	Get(ctx context.Context, id string) (*todo.Todo, error)
	List(ctx context.Context) ([]*todo.Todo, error)
	Update(ctx context.Context, id string, p todo.Patch) (*todo.Todo, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo repository.Repository
}

func New(repo repository.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, title, description string, completed bool) (*todo.Todo, error) {
	if title == "" {
		return nil, apperr.Invalid("Title is required")
	}
	t := &todo.Todo{
		Title:       title,
		Description: description,
		Completed:   completed,
	}
	return s.repo.Create(ctx, t)
}

func (s *service) Get(ctx context.Context, id string) (*todo.Todo, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*todo.Todo, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, p todo.Patch) (*todo.Todo, error) {
	return s.repo.Update(ctx, id, p)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
