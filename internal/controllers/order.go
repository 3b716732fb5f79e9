package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"print3d-backend/internal/dto"
	"print3d-backend/internal/services"
	apperrors "print3d-backend/pkg/errors"
	"print3d-backend/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type OrderController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewOrderController(orderService services.OrderServiceInterface, logger *zap.Logger) *OrderController {
	return &OrderController{orderService: orderService, logger: logger}
}

func (c *OrderController) GetOrders(ctx echo.Context) error {
	orders, err := c.orderService.GetOrders(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, echo.Map{"orders": orders})
}

func (c *OrderController) UpdateOrderStatus(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.UpdateOrderStatusDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err), c.logger)
	}
	if payload.OrderID == 0 || payload.Status == "" {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Missing order_id or status", apperrors.ErrBadRequest), c.logger)
	}

	if err := c.orderService.UpdateOrderStatus(reqCtx, payload.OrderID, payload.Status); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "order_id": payload.OrderID, "status": payload.Status})
}

// ExportOrders выгружает все заявки в XLSX для админ-панели.
func (c *OrderController) ExportOrders(ctx echo.Context) error {
	orders, err := c.orderService.GetOrders(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return c.respondWithXLSX(ctx, orders)
}

var orderHeaders = []string{
	"ID", "Дата", "Тип клиента", "Компания", "ИНН", "Email", "Телефон",
	"Размеры (Д×Ш×В, мм)", "Пластик", "Цвет", "Заполнение", "Количество",
	"Описание", "Файл", "Статус",
}

var statusLabels = map[string]string{
	"new":        "Новая",
	"processing": "В работе",
	"completed":  "Выполнена",
	"cancelled":  "Отменена",
}

func nullStr(v null.String) string {
	if v.Valid && v.String != "" {
		return v.String
	}
	return "-"
}

func orderDimensions(o dto.OrderDTO) string {
	fmtDim := func(v null.Float64) string {
		if !v.Valid {
			return "-"
		}
		return fmt.Sprintf("%g", v.Float64)
	}
	return fmtDim(o.Length) + "×" + fmtDim(o.Width) + "×" + fmtDim(o.Height)
}

func orderToSlice(o dto.OrderDTO) []interface{} {
	customerType := "Физ. лицо"
	if o.CustomerType == "legal" {
		customerType = "Юр. лицо"
	}
	status := o.Status
	if label, ok := statusLabels[o.Status]; ok {
		status = label
	}
	infill := "-"
	if o.Infill.Valid {
		infill = fmt.Sprintf("%d%%", o.Infill.Int)
	}

	return []interface{}{
		o.ID, o.CreatedAt, customerType, nullStr(o.CompanyName), nullStr(o.INN),
		o.Email, nullStr(o.Phone), orderDimensions(o), nullStr(o.PlasticType),
		nullStr(o.Color), infill, o.Quantity, nullStr(o.Description),
		nullStr(o.FileName), status,
	}
}

func (c *OrderController) respondWithXLSX(ctx echo.Context, orders []dto.OrderDTO) error {
	f := excelize.NewFile()
	sheet := "Заявки"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &orderHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "O1", style)

	for i, o := range orders {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := orderToSlice(o)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "D", "G", 22)
	f.SetColWidth(sheet, "H", "H", 20)
	f.SetColWidth(sheet, "M", "M", 40)
	f.SetColWidth(sheet, "N", "N", 25)

	date := time.Now().Format("2006-01-02")
	// Русское имя файла уходит в filename*, ASCII-вариант остаётся запасным.
	utfName := url.PathEscape(fmt.Sprintf("Заявки_3DPrint_%s.xlsx", date))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=orders_%s.xlsx; filename*=UTF-8''%s", date, utfName))
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
