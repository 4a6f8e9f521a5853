package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/donation"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateCenter(c *fiber.Ctx) error
		GetCenters(c *fiber.Ctx) error
		UpdateCenter(c *fiber.Ctx) error
		DeleteCenter(c *fiber.Ctx) error

		CreateDonation(c *fiber.Ctx) error
		GetDonations(c *fiber.Ctx) error
		GetDonationDetails(c *fiber.Ctx) error
		DeleteDonation(c *fiber.Ctx) error

		CreateMultiDonation(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateCenter(c *fiber.Ctx) error {
	req := new(domain.DonationCenterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonationCenter, err)
	}

	res, err := h.donationService.CreateCenter(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonationCenter, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonationCenter)
}

func (h *donationHandler) GetCenters(c *fiber.Ctx) error {
	// Without a radius the listing returns every center; the nearby search
	// only kicks in when the caller asks for one.
	lat, _ := strconv.ParseFloat(c.Query("lat", "0"), 64)
	lng, _ := strconv.ParseFloat(c.Query("lng", "0"), 64)
	radius, _ := strconv.ParseFloat(c.Query("radius", "0"), 64)

	res, err := h.donationService.GetCenters(c.Context(), lat, lng, radius)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrInvalidCoordinates) {
			status = fiber.StatusUnprocessableEntity
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetDonationCenters, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonationCenters)
}

func (h *donationHandler) UpdateCenter(c *fiber.Ctx) error {
	centerID := c.Params("id")
	req := new(domain.DonationCenterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateDonationCenter, err)
	}

	res, err := h.donationService.UpdateCenter(c.Context(), centerID, *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrDonationCenterNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedUpdateDonationCenter, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateDonationCenter)
}

func (h *donationHandler) DeleteCenter(c *fiber.Ctx) error {
	centerID := c.Params("id")

	if err := h.donationService.DeleteCenter(c.Context(), centerID); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrDonationCenterNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteDonationCenter, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonationCenter)
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DonationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.CreateDonation(c.Context(), *req, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrFoodLogNotFound), errors.Is(err, domain.ErrDonationCenterNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrUnauthorizedFoodAccess):
			status = fiber.StatusForbidden
		case errors.Is(err, domain.ErrInsufficientQuantity):
			status = fiber.StatusUnprocessableEntity
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetDonations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	donations, count, err := h.donationService.GetDonations(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": donations,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonationDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	res, err := h.donationService.GetDonationByID(c.Context(), donationID, userID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrDonationNotFound) {
			status = fiber.StatusNotFound
		} else if errors.Is(err, domain.ErrUnauthorizedDonationAccess) {
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) DeleteDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	if err := h.donationService.DeleteDonation(c.Context(), donationID, userID); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrDonationNotFound) {
			status = fiber.StatusNotFound
		} else if errors.Is(err, domain.ErrUnauthorizedDonationAccess) {
			status = fiber.StatusForbidden
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDeleteDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteDonation)
}

func (h *donationHandler) CreateMultiDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.MultiDonationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateMultiDonation, err)
	}

	res, err := h.donationService.CreateMultiDonation(c.Context(), *req, userID)
	if err != nil {
		var validationErr *domain.MultiDonationValidationError
		if errors.As(err, &validationErr) {
			return presenters.ErrorDetailResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedCreateMultiDonation, validationErr.Items)
		}

		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrDonationCenterNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrInsufficientQuantity):
			status = fiber.StatusUnprocessableEntity
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedCreateMultiDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateMultiDonation)
}
