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

func runOrderRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	orderRepo := repositories.NewOrderRepository(dbConn)
	orderService := services.NewOrderService(orderRepo, logger)
	orderCtrl := controllers.NewOrderController(orderService, logger)

	preflight := middleware.Preflight(middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.AdminHeader},
	})

	group := api.Group("/orders")
	{
		group.OPTIONS("", preflight)
		group.GET("", orderCtrl.GetOrders, authMW.Require)
		group.OPTIONS("/export", preflight)
		group.GET("/export", orderCtrl.ExportOrders, authMW.Require)
		group.OPTIONS("/status", preflight)
		group.POST("/status", orderCtrl.UpdateOrderStatus, authMW.Require)
	}
}
