package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"blogcms/api/internal/middleware"
	"blogcms/api/internal/models"
)

func TestRequireRoles_AdminAllowed(t *testing.T) {
	lookup := &fakeUserLookup{users: map[string]models.User{
		"admin": {ID: "admin", Role: models.UserRoleAdmin},
	}}
	r := newGateRouter(lookup, middleware.RequireRoles(models.UserRoleAdmin))

	w := probe(t, r, "Bearer "+signAccess(t, "admin"))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_UserForbidden(t *testing.T) {
	lookup := &fakeUserLookup{users: map[string]models.User{
		"u1": {ID: "u1", Role: models.UserRoleUser},
	}}
	r := newGateRouter(lookup, middleware.RequireRoles(models.UserRoleAdmin))

	w := probe(t, r, "Bearer "+signAccess(t, "u1"))

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Forbidden")
}

func TestRequireRoles_EmptySetAdmitsAnyAuthenticated(t *testing.T) {
	lookup := &fakeUserLookup{users: map[string]models.User{
		"u1": {ID: "u1", Role: models.UserRoleUser},
	}}
	r := newGateRouter(lookup, middleware.RequireRoles())

	w := probe(t, r, "Bearer "+signAccess(t, "u1"))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_UnauthenticatedRequest(t *testing.T) {
	r := newGateRouter(&fakeUserLookup{}, middleware.RequireRoles(models.UserRoleAdmin))

	w := probe(t, r, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles_MultipleRoles(t *testing.T) {
	lookup := &fakeUserLookup{users: map[string]models.User{
		"u1":    {ID: "u1", Role: models.UserRoleUser},
		"admin": {ID: "admin", Role: models.UserRoleAdmin},
	}}
	r := newGateRouter(lookup, middleware.RequireRoles(models.UserRoleUser, models.UserRoleAdmin))

	require.Equal(t, http.StatusOK, probe(t, r, "Bearer "+signAccess(t, "u1")).Code)
	require.Equal(t, http.StatusOK, probe(t, r, "Bearer "+signAccess(t, "admin")).Code)
}
