package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig описывает, что разрешено конкретному ресурсу.
type CORSConfig struct {
	AllowMethods []string
	AllowHeaders []string
}

// AllowOrigin вешает Access-Control-Allow-Origin: * на каждый ответ,
// включая 404 и 405 от роутера. Подключается глобально.
func AllowOrigin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
			return next(c)
		}
	}
}

// Preflight отвечает на OPTIONS статусом 200 с методами и заголовками
// ресурса. Кэш preflight — сутки. Регистрируется явным OPTIONS-маршрутом,
// чтобы не перехватывать 405 для остальных методов.
func Preflight(cfg CORSConfig) echo.HandlerFunc {
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowMethods, allowMethods)
		h.Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
		h.Set(echo.HeaderAccessControlMaxAge, "86400")
		return c.NoContent(http.StatusOK)
	}
}
