package repository

import (
	"context"

	"github.com/tasknest/tasknest-api/internal/todo"
)

// listLimit caps collection listings.
const listLimit = 50

// Repository defines persistence operations for todos.
type Repository interface {
	Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error)
	Get(ctx context.Context, id string) (*todo.Todo, error)
	List(ctx context.Context) ([]*todo.Todo, error)
	// Update merges the patch into the stored document, refreshes updatedAt
	// and returns the document as re-read after the write.
	Update(ctx context.Context, id string, p todo.Patch) (*todo.Todo, error)
	// Delete removes the document. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
