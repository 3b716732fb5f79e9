package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"print3d-backend/pkg/config"
	"print3d-backend/pkg/mailer"
	"print3d-backend/pkg/middleware"
)

// InitRouter собирает все маршруты API. У каждой группы свой CORS:
// публичные ручки не обещают клиенту админский заголовок.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, orderMailer mailer.MailerInterface, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(cfg.Admin.Token, logger)

	runClientRouter(api, dbConn, logger, authMW)
	runPortfolioRouter(api, dbConn, logger, authMW)
	runOrderRouter(api, dbConn, logger, authMW)
	runSendOrderRouter(api, orderMailer, cfg.SMTP.OrderRecipient, logger)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
