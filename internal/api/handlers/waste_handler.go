package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/waste"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	WasteHandler interface {
		AddWasteLog(c *fiber.Ctx) error
		GetWasteLogs(c *fiber.Ctx) error
		DeleteWasteLog(c *fiber.Ctx) error
	}

	wasteHandler struct {
		wasteService waste.WasteService
		validator    *validator.Validate
	}
)

func NewWasteHandler(wasteService waste.WasteService, validator *validator.Validate) WasteHandler {
	return &wasteHandler{
		wasteService: wasteService,
		validator:    validator,
	}
}

func (h *wasteHandler) AddWasteLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddWasteLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddWasteLog, err)
	}

	res, err := h.wasteService.AddWasteLog(c.Context(), *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrFoodLogNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrUnauthorizedFoodAccess):
			status = fiber.StatusForbidden
		case errors.Is(err, domain.ErrInsufficientQuantity):
			status = fiber.StatusUnprocessableEntity
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedAddWasteLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddWasteLog)
}

func (h *wasteHandler) GetWasteLogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	logs, count, err := h.wasteService.GetWasteLogs(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetWasteLogs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": logs,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetWasteLogs)
}

func (h *wasteHandler) DeleteWasteLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	wasteLogID := c.Params("id")

	if err := h.wasteService.DeleteWasteLog(c.Context(), wasteLogID, userID); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrWasteLogNotFound) {
			status = fiber.StatusNotFound
		} else if errors.Is(err, domain.ErrUnauthorizedWasteAccess) {
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteWasteLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteWasteLog)
}
