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

type PortfolioController struct {
	portfolioService services.PortfolioServiceInterface
	logger           *zap.Logger
}

func NewPortfolioController(portfolioService services.PortfolioServiceInterface, logger *zap.Logger) *PortfolioController {
	return &PortfolioController{portfolioService: portfolioService, logger: logger}
}

// GetPublicPortfolio отдаёт только видимые работы для витрины сайта.
func (c *PortfolioController) GetPublicPortfolio(ctx echo.Context) error {
	items, err := c.portfolioService.GetPublicPortfolio(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, echo.Map{"portfolio": items})
}

func (c *PortfolioController) GetPortfolio(ctx echo.Context) error {
	items, err := c.portfolioService.GetPortfolio(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, echo.Map{"portfolio": items})
}

func (c *PortfolioController) CreatePortfolioItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreatePortfolioItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Title and image_url are required", err), c.logger)
	}

	newID, err := c.portfolioService.CreatePortfolioItem(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "id": newID})
}

func (c *PortfolioController) UpdatePortfolioItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.UpdatePortfolioItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}
	if payload.ID == 0 {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "ID is required", apperrors.ErrBadRequest), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Validation failed", err), c.logger)
	}

	if err := c.portfolioService.UpdatePortfolioItem(reqCtx, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "id": payload.ID})
}

func (c *PortfolioController) DeletePortfolioItem(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.DeleteDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}
	if payload.ID == 0 {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "ID is required", apperrors.ErrBadRequest), c.logger)
	}

	if err := c.portfolioService.DeletePortfolioItem(reqCtx, payload.ID); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}
