package routes

import (
	"net/http"

	"print3d-backend/internal/controllers"
	"print3d-backend/internal/services"
	"print3d-backend/pkg/mailer"
	"print3d-backend/pkg/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func runSendOrderRouter(api *echo.Group, orderMailer mailer.MailerInterface, orderRecipient string, logger *zap.Logger) {
	notificationService := services.NewNotificationService(orderMailer, orderRecipient, logger)
	sendOrderCtrl := controllers.NewSendOrderController(notificationService, logger)

	group := api.Group("/send-order")
	group.OPTIONS("", middleware.Preflight(middleware.CORSConfig{
		AllowMethods: []string{http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	group.POST("", sendOrderCtrl.SendOrder)
}
