package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/food"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodLog(c *fiber.Ctx) error
		UpdateFoodLog(c *fiber.Ctx) error
		DeleteFoodLog(c *fiber.Ctx) error
		GetFoodLogs(c *fiber.Ctx) error
		GetMyFoodLogs(c *fiber.Ctx) error
		GetFoodLogDetails(c *fiber.Ctx) error

		AddCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFoodLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFoodLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodLog, err)
	}

	res, err := h.foodService.AddFoodLog(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodLog)
}

func (h *foodHandler) UpdateFoodLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")
	req := new(domain.UpdateFoodLogRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodLog, err)
	}

	res, err := h.foodService.UpdateFoodLog(c.Context(), logID, *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrFoodLogNotFound) {
			status = fiber.StatusNotFound
		} else if errors.Is(err, domain.ErrUnauthorizedFoodAccess) {
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateFoodLog, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFoodLog)
}

func (h *foodHandler) DeleteFoodLog(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")

	if err := h.foodService.DeleteFoodLog(c.Context(), logID, userID); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrFoodLogNotFound) {
			status = fiber.StatusNotFound
		} else if errors.Is(err, domain.ErrUnauthorizedFoodAccess) {
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteFoodLog, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodLog)
}

func (h *foodHandler) GetFoodLogs(c *fiber.Ctx) error {
	return h.listFoodLogs(c, "")
}

func (h *foodHandler) GetMyFoodLogs(c *fiber.Ctx) error {
	return h.listFoodLogs(c, c.Locals("user_id").(string))
}

func (h *foodHandler) listFoodLogs(c *fiber.Ctx, userID string) error {
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	logs, count, err := h.foodService.GetFoodLogs(c.Context(), userID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodLogs, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": logs,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFoodLogs)
}

func (h *foodHandler) GetFoodLogDetails(c *fiber.Ctx) error {
	logID := c.Params("id")

	item, err := h.foodService.GetFoodLogByID(c.Context(), logID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrFoodLogNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetFoodLogs, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFoodLogs)
}

func (h *foodHandler) AddCategory(c *fiber.Ctx) error {
	req := new(domain.CategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	res, err := h.foodService.AddCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCategory)
}

func (h *foodHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.foodService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *foodHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	req := new(domain.CategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
	}

	res, err := h.foodService.UpdateCategory(c.Context(), categoryID, *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrCategoryNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *foodHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	if err := h.foodService.DeleteCategory(c.Context(), categoryID); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrCategoryNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteCategory, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}
