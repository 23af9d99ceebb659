package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleContext(role any) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if role != nil {
		c.Set(ContextKeyRole, role)
	}

	return c
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireRole_MismatchReturnsForbiddenRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := newRoleContext(entity.RoleCustomer)
	err := m.RequireRole(entity.RoleVendor)(okHandler)(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbiddenRole))
}

func TestRequireRole_MissingRoleReturnsForbiddenRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := newRoleContext(nil)
	err := m.RequireRole(entity.RoleVendor)(okHandler)(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbiddenRole))
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := newRoleContext(entity.RoleVendor)
	require.NoError(t, m.RequireRole(entity.RoleVendor)(okHandler)(c))
}

func TestRequireRole_AdminBypassesEveryGate(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := newRoleContext(entity.RoleAdmin)
	require.NoError(t, m.RequireRole(entity.RoleVendor)(okHandler)(c))
}
