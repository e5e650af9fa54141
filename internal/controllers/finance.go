package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"rental-system/internal/services"
	"rental-system/pkg/types"
	"rental-system/pkg/utils"
)

type FinanceController struct {
	financeService services.FinanceServiceInterface
	logger         *zap.Logger
}

func NewFinanceController(
	financeService services.FinanceServiceInterface,
	logger *zap.Logger,
) *FinanceController {
	return &FinanceController{
		financeService: financeService,
		logger:         logger,
	}
}

func (c *FinanceController) GetSummary(ctx echo.Context) error {
	res, err := c.financeService.GetSummary(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetSummary: failed to compute financial summary", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "financial summary computed", http.StatusOK)
}

func (c *FinanceController) GetEventFinancials(ctx echo.Context) error {
	res, err := c.financeService.GetEventFinancials(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "event financials computed", http.StatusOK)
}

func (c *FinanceController) GetEventFinancialsByID(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	res, err := c.financeService.GetEventFinancialsByID(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "event financials computed", http.StatusOK)
}

func (c *FinanceController) GetFixedEmployees(ctx echo.Context) error {
	res, err := c.financeService.GetFixedEmployeeFinances(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "fixed employee finances computed", http.StatusOK)
}

func (c *FinanceController) GetFreelancerDailies(ctx echo.Context) error {
	res, err := c.financeService.GetFreelancerDailies(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "freelancer dailies computed", http.StatusOK)
}

func (c *FinanceController) GetOverview(ctx echo.Context) error {
	res, err := c.financeService.GetOverview(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "finance overview computed", http.StatusOK)
}

var reportHeaders = []interface{}{
	"Client", "Revenue", "Fixed cost", "Freelance cost", "Profit", "Margin %",
}

// GetReport streams the per-event financials as an XLSX workbook.
func (c *FinanceController) GetReport(ctx echo.Context) error {
	data, err := c.financeService.GetEventFinancials(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return c.respondWithXLSX(ctx, data)
}

func (c *FinanceController) respondWithXLSX(ctx echo.Context, data []types.EventFinancials) error {
	f := excelize.NewFile()
	sheet := "Event financials"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "F1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			item.ClientName,
			item.Revenue.String(),
			item.FixedCost.String(),
			item.FreelanceCost.String(),
			item.Profit.String(),
			item.MarginPercent.StringFixed(1),
		}
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "F", 16)

	fileName := fmt.Sprintf("finance_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
