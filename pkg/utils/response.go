package utils

import (
	"errors"
	"net/http"

	apperrors "print3d-backend/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorBody — единый формат тела ошибки для всего API: {"error": "..."}.
type ErrorBody struct {
	Error string `json:"error"`
}

var errorStatusList = map[error]int{
	apperrors.ErrUnauthorized:     http.StatusUnauthorized,
	apperrors.ErrNotFound:         http.StatusNotFound,
	apperrors.ErrBadRequest:       http.StatusBadRequest,
	apperrors.ErrMethodNotAllowed: http.StatusMethodNotAllowed,
}

func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return ctx.JSON(httpErr.Code, ErrorBody{Error: httpErr.Message})
	}

	for sentinel, code := range errorStatusList {
		if errors.Is(err, sentinel) {
			return ctx.JSON(code, ErrorBody{Error: sentinel.Error()})
		}
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return ctx.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error"})
}
