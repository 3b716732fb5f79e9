package controllers

import (
	"net/http"

	"print3d-backend/internal/dto"
	"print3d-backend/internal/services"
	apperrors "print3d-backend/pkg/errors"
	"print3d-backend/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SendOrderController struct {
	notificationService services.NotificationServiceInterface
	logger              *zap.Logger
}

func NewSendOrderController(notificationService services.NotificationServiceInterface, logger *zap.Logger) *SendOrderController {
	return &SendOrderController{notificationService: notificationService, logger: logger}
}

// SendOrder принимает заявку с формы заказа и рассылает письма.
// Сбой почты не валит запрос: клиент в любом случае получает номер заявки.
func (c *SendOrderController) SendOrder(ctx echo.Context) error {
	var payload dto.OrderSubmissionDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}

	result := c.notificationService.SendOrderNotification(ctx.Request().Context(), payload)

	response := echo.Map{"success": true, "orderNumber": result.OrderNumber}
	if result.Message != "" {
		response["message"] = result.Message
	}
	return ctx.JSON(http.StatusOK, response)
}
