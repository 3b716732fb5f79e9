package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"print3d-backend/pkg/contextkeys"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func callWithToken(t *testing.T, mw echo.MiddlewareFunc, token string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if token != "" {
		req.Header.Set(AdminHeader, token)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var reachedHandler bool
	handler := mw(func(c echo.Context) error {
		reachedHandler = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(ctx))
	return rec, reachedHandler
}

func TestRequire_ValidToken(t *testing.T) {
	mw := NewAuthMiddleware("secret-token", zap.NewNop())
	rec, reached := callWithToken(t, mw.Require, "secret-token")

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequire_RejectsWrongOrMissingToken(t *testing.T) {
	mw := NewAuthMiddleware("secret-token", zap.NewNop())

	for _, token := range []string{"", "wrong-token"} {
		rec, reached := callWithToken(t, mw.Require, token)
		assert.False(t, reached, "запрос с токеном %q не должен дойти до ручки", token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	}
}

func TestRequire_EmptyConfiguredTokenLocksOut(t *testing.T) {
	mw := NewAuthMiddleware("", zap.NewNop())

	// Пустой настроенный токен не означает "пускать всех".
	rec, reached := callWithToken(t, mw.Require, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptional_MarksAdminFlag(t *testing.T) {
	mw := NewAuthMiddleware("secret-token", zap.NewNop())
	e := echo.New()

	for token, wantAdmin := range map[string]bool{"secret-token": true, "wrong": false, "": false} {
		req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
		if token != "" {
			req.Header.Set(AdminHeader, token)
		}
		ctx := e.NewContext(req, httptest.NewRecorder())

		var gotAdmin bool
		handler := mw.Optional(func(c echo.Context) error {
			gotAdmin = contextkeys.IsAdmin(c.Request().Context())
			return nil
		})
		require.NoError(t, handler(ctx))
		assert.Equal(t, wantAdmin, gotAdmin, "токен %q", token)
	}
}
