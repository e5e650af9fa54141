package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"rental-system/internal/dto"
	"rental-system/internal/services"
	apperrors "rental-system/pkg/errors"
	"rental-system/pkg/utils"
)

type CompanySettingsController struct {
	settingsService services.CompanySettingsServiceInterface
	logger          *zap.Logger
}

func NewCompanySettingsController(
	settingsService services.CompanySettingsServiceInterface,
	logger *zap.Logger,
) *CompanySettingsController {
	return &CompanySettingsController{
		settingsService: settingsService,
		logger:          logger,
	}
}

func (c *CompanySettingsController) GetSettings(ctx echo.Context) error {
	res, err := c.settingsService.GetSettings(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "settings fetched", http.StatusOK)
}

func (c *CompanySettingsController) UpdateSettings(ctx echo.Context) error {
	var payload dto.UpdateCompanySettingsDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.settingsService.UpdateSettings(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "settings updated", http.StatusOK)
}
