// Файл: main.go

package main

import (
	"log"
	"net/http"

	"print3d-backend/internal/routes"
	"print3d-backend/pkg/config"
	"print3d-backend/pkg/database/postgresql"
	apperrors "print3d-backend/pkg/errors"
	applogger "print3d-backend/pkg/logger"
	"print3d-backend/pkg/mailer"
	appmiddleware "print3d-backend/pkg/middleware"
	"print3d-backend/pkg/utils"
	"print3d-backend/pkg/validation"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	e := echo.New()
	logger := applogger.NewLogger()

	cfg := config.New()

	e.Use(appmiddleware.AllowOrigin())

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	// Ошибки маршрутизации отдаём в том же JSON-формате, что и ошибки ручек.
	e.HTTPErrorHandler = utils.HTTPErrorHandler(logger)

	e.Validator = validation.New()

	dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbConn.Close()

	orderMailer := mailer.NewMailer(cfg.SMTP, logger)

	routes.InitRouter(e, dbConn, orderMailer, logger, cfg)

	logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
