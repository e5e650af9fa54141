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

type EventController struct {
	eventService services.EventServiceInterface
	logger       *zap.Logger
}

func NewEventController(
	eventService services.EventServiceInterface,
	logger *zap.Logger,
) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

func (c *EventController) GetEvents(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.eventService.GetEvents(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetEvents: failed to list events", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "event list fetched", http.StatusOK, total)
}

func (c *EventController) GetCalendar(ctx echo.Context) error {
	res, err := c.eventService.GetCalendar(
		ctx.Request().Context(),
		ctx.QueryParam("from"),
		ctx.QueryParam("to"),
	)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "calendar fetched", http.StatusOK)
}

func (c *EventController) FindEvent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.eventService.FindEvent(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "event fetched", http.StatusOK)
}

func (c *EventController) CreateEvent(ctx echo.Context) error {
	var payload dto.CreateEventDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.eventService.CreateEvent(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "event created", http.StatusCreated)
}

func (c *EventController) UpdateEvent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEventDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.eventService.UpdateEvent(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "event updated", http.StatusOK)
}

func (c *EventController) ReplaceEquipmentItems(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload []dto.EventEquipmentItemDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.ErrBadRequest, c.logger)
	}
	for i := range payload {
		if err := ctx.Validate(&payload[i]); err != nil {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
	}

	res, err := c.eventService.ReplaceEquipmentItems(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "event equipment updated", http.StatusOK)
}

func (c *EventController) DeleteEvent(ctx echo.Context) error {
	id, err := pathID(ctx, "id")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.eventService.DeleteEvent(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "event deleted", http.StatusOK)
}
