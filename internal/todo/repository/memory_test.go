package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tasknest/tasknest-api/internal/apperr"
	"github.com/tasknest/tasknest-api/internal/todo"
)

func TestMemoryRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepo()

	created, err := r.Create(ctx, &todo.Todo{Title: "Buy milk", Description: "2 liters"})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())
	id := created.ID.Hex()

	got, err := r.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Buy milk", got.Title)
	require.False(t, got.Completed)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	done := true
	updated, err := r.Update(ctx, id, todo.Patch{Completed: &done})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, "Buy milk", updated.Title)
	require.Equal(t, "2 liters", updated.Description)

	require.NoError(t, r.Delete(ctx, id))
	_, err = r.Get(ctx, id)
	require.True(t, errors.Is(err, apperr.ErrNotFound))

	// deleting again must still succeed
	require.NoError(t, r.Delete(ctx, id))
}

func TestMemoryRepoUpdateMissing(t *testing.T) {
	r := NewMemoryRepo()
	title := "x"
	_, err := r.Update(context.Background(), "64b000000000000000000000", todo.Patch{Title: &title})
	require.True(t, errors.Is(err, apperr.ErrNotFound))
}
