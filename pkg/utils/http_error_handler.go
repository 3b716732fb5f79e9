package utils

import (
	"errors"
	"net/http"

	apperrors "print3d-backend/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HTTPErrorHandler приводит ошибки маршрутизации к общему JSON-формату API:
// непрописанный метод на известном пути — 405, неизвестный путь — 404.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			switch echoErr.Code {
			case http.StatusMethodNotAllowed:
				ErrorResponse(c, apperrors.ErrMethodNotAllowed, logger)
				return
			case http.StatusNotFound:
				ErrorResponse(c, apperrors.NewHttpError(http.StatusNotFound, "Not found", err), logger)
				return
			}
		}

		ErrorResponse(c, err, logger)
	}
}
