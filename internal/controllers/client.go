package controllers

import (
	"net/http"

	"print3d-backend/internal/dto"
	"print3d-backend/internal/services"
	"print3d-backend/pkg/contextkeys"
	apperrors "print3d-backend/pkg/errors"
	"print3d-backend/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ClientController struct {
	clientService services.ClientServiceInterface
	logger        *zap.Logger
}

func NewClientController(clientService services.ClientServiceInterface, logger *zap.Logger) *ClientController {
	return &ClientController{clientService: clientService, logger: logger}
}

// GetClients: публичный список видимых логотипов; с верным админ-токеном —
// все записи со служебными полями.
func (c *ClientController) GetClients(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if contextkeys.IsAdmin(reqCtx) {
		clients, err := c.clientService.GetClients(reqCtx)
		if err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		return ctx.JSON(http.StatusOK, echo.Map{"clients": clients})
	}

	clients, err := c.clientService.GetPublicClients(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, echo.Map{"clients": clients})
}

func (c *ClientController) CreateClient(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreateClientDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Name and logo_url are required", err), c.logger)
	}

	newID, err := c.clientService.CreateClient(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "id": newID})
}

func (c *ClientController) UpdateClient(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.UpdateClientDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}
	if payload.ID == 0 {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "ID is required", apperrors.ErrBadRequest), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Validation failed", err), c.logger)
	}

	if err := c.clientService.UpdateClient(reqCtx, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "id": payload.ID})
}

func (c *ClientController) DeleteClient(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.DeleteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}
	if payload.ID == 0 {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "ID is required", apperrors.ErrBadRequest), c.logger)
	}

	if err := c.clientService.DeleteClient(reqCtx, payload.ID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}
