package users

import (
	"context"
	"sync"
	"time"

	"github.com/tasknest/tasknest-api/internal/apperr"
	"github.com/tasknest/tasknest-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserRepository is an in-memory UserRepository used by unit tests.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	store map[string]*models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{store: make(map[string]*models.User)}
}

func (m *MemoryUserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	m.store[u.ID.Hex()] = &cp
	return u, nil
}

func (m *MemoryUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.store[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperr.NotFound("User not found")
}

func (m *MemoryUserRepository) List(ctx context.Context) ([]*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.User, 0, len(m.store))
	for _, u := range m.store {
		cp := *u
		out = append(out, &cp)
		if len(out) == listLimit {
			break
		}
	}
	return out, nil
}
