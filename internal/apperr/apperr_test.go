package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, Status(Invalid("Name and email are required")))
	require.Equal(t, http.StatusNotFound, Status(NotFound("User not found")))
	require.Equal(t, http.StatusInternalServerError, Status(errors.New("upstream exploded")))
}

func TestWrappedErrorsKeepKind(t *testing.T) {
	err := fmt.Errorf("get user: %w", NotFound("User not found"))
	require.True(t, errors.Is(err, ErrNotFound))
	require.Equal(t, http.StatusNotFound, Status(err))
}

func TestMessagePassthrough(t *testing.T) {
	err := Invalid("Title is required")
	require.Equal(t, "Title is required", err.Error())
}
