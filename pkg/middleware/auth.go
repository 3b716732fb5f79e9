package middleware

import (
	"context"
	"crypto/subtle"

	"print3d-backend/pkg/contextkeys"
	apperrors "print3d-backend/pkg/errors"
	"print3d-backend/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AdminHeader — заголовок с токеном админ-панели. Поиск регистронезависимый:
// net/http приводит имена заголовков к канонической форме.
const AdminHeader = "X-Admin-Token"

type AuthMiddleware struct {
	token  string
	logger *zap.Logger
}

func NewAuthMiddleware(token string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		token:  token,
		logger: logger,
	}
}

// isAdmin сравнивает предъявленный токен с настроенным. Сравнение за
// постоянное время; пустой настроенный токен навсегда закрывает доступ.
func (m *AuthMiddleware) isAdmin(c echo.Context) bool {
	supplied := c.Request().Header.Get(AdminHeader)
	if m.token == "" || supplied == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(m.token)) == 1
}

// Require пропускает запрос только с верным токеном, иначе 401.
// Значение токена в логи не попадает.
func (m *AuthMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.isAdmin(c) {
			m.logger.Warn("AuthMiddleware: Отклонён запрос без верного админ-токена",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
			)
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.IsAdminKey, true)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Optional не закрывает запрос, но отмечает в контексте, был ли предъявлен
// верный токен. Используется там, где админ видит расширенную проекцию.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := context.WithValue(c.Request().Context(), contextkeys.IsAdminKey, m.isAdmin(c))
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
