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

func runPortfolioRouter(api *echo.Group, dbConn *pgxpool.Pool, logger *zap.Logger, authMW *middleware.AuthMiddleware) {
	portfolioRepo := repositories.NewPortfolioRepository(dbConn)
	portfolioService := services.NewPortfolioService(portfolioRepo, logger)
	portfolioCtrl := controllers.NewPortfolioController(portfolioService, logger)

	// Публичная витрина: только чтение, без админского заголовка.
	publicGroup := api.Group("/portfolio")
	publicGroup.OPTIONS("", middleware.Preflight(middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	publicGroup.GET("", portfolioCtrl.GetPublicPortfolio)

	adminPreflight := middleware.Preflight(middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.AdminHeader},
	})

	adminGroup := api.Group("/admin/portfolio")
	{
		adminGroup.OPTIONS("", adminPreflight)
		adminGroup.GET("", portfolioCtrl.GetPortfolio, authMW.Require)
		adminGroup.POST("", portfolioCtrl.CreatePortfolioItem, authMW.Require)
		adminGroup.PUT("", portfolioCtrl.UpdatePortfolioItem, authMW.Require)
		adminGroup.DELETE("", portfolioCtrl.DeletePortfolioItem, authMW.Require)
	}
}
