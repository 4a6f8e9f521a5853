package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/user"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
		GetUserStats(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrUsernameTaken) {
			status = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedRegister, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *userHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrUserNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUser, err)
	}

	res, err := h.userService.UpdateUser(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateUser)
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.userService.DeleteUser(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUser)
}

func (h *userHandler) GetUserStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.GetUserStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUserStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserStats)
}
