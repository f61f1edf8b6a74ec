package repository

import (
	"context"
	"sync"
	"time"

	"github.com/tasknest/tasknest-api/internal/apperr"
	"github.com/tasknest/tasknest-api/internal/todo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is a simple in-memory repository used by unit tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*todo.Todo
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*todo.Todo)}
}

func (m *MemoryRepo) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	cp := *t
	m.store[t.ID.Hex()] = &cp
	return t, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*todo.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.store[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, apperr.NotFound("Todo not found")
}

func (m *MemoryRepo) List(ctx context.Context) ([]*todo.Todo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*todo.Todo, 0, len(m.store))
	for _, t := range m.store {
		cp := *t
		out = append(out, &cp)
		if len(out) == listLimit {
			break
		}
	}
	return out, nil
}

func (m *MemoryRepo) Update(ctx context.Context, id string, p todo.Patch) (*todo.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.store[id]
	if !ok {
		return nil, apperr.NotFound("Todo not found")
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	t.UpdatedAt = time.Now().UTC()
	cp := *t
	return &cp, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, id)
	return nil
}
