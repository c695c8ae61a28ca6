package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, BadRequest("x").Status)
	require.Equal(t, http.StatusUnauthorized, Unauthorized("x").Status)
	require.Equal(t, http.StatusForbidden, Forbidden("x").Status)
	require.Equal(t, http.StatusNotFound, NotFound("x").Status)
	require.Equal(t, "x", NotFound("x").Error())
}

func TestStatusOf(t *testing.T) {
	require.Equal(t, http.StatusNotFound, StatusOf(NotFound("gone")))
	require.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))

	wrapped := fmt.Errorf("context: %w", Unauthorized("nope"))
	require.Equal(t, http.StatusUnauthorized, StatusOf(wrapped))
}
