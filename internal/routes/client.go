package routes

import (
	"net/http"

	"print3d-backend/internal/controllers"
	"print3d-backend/internal/repositories"
	"print3d-backend/internal/services"
	"print3d-backend/pkg/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runClientRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	clientRepo := repositories.NewClientRepository(dbConn)
	clientService := services.NewClientService(clientRepo, logger)
	clientCtrl := controllers.NewClientController(clientService, logger)

	preflight := middleware.Preflight(middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.AdminHeader},
	})

	group := api.Group("/clients")
	{
		group.OPTIONS("", preflight)
		group.GET("", clientCtrl.GetClients, authMW.Optional)
		group.POST("", clientCtrl.CreateClient, authMW.Require)
		group.PUT("", clientCtrl.UpdateClient, authMW.Require)
		group.DELETE("", clientCtrl.DeleteClient, authMW.Require)
	}
}
