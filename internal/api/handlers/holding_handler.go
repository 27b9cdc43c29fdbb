package handlers

import (
	"ZWH-Backend/domain"
	"ZWH-Backend/internal/api/presenters"
	"ZWH-Backend/pkg/holding"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	HoldingHandler interface {
		AddHolding(c *fiber.Ctx) error
		GetHoldings(c *fiber.Ctx) error
		UpdateHolding(c *fiber.Ctx) error
		DeleteHolding(c *fiber.Ctx) error
		GetHoldingStats(c *fiber.Ctx) error
	}

	holdingHandler struct {
		holdingService holding.HoldingService
		validator      *validator.Validate
	}
)

func NewHoldingHandler(holdingService holding.HoldingService, validator *validator.Validate) HoldingHandler {
	return &holdingHandler{
		holdingService: holdingService,
		validator:      validator,
	}
}

func (h *holdingHandler) AddHolding(c *fiber.Ctx) error {
	location, err := domain.ParseLocation(c.Params("location"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddHolding, err)
	}

	req := new(domain.AddHoldingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddHolding, err)
	}

	res, err := h.holdingService.AddHolding(c.UserContext(), userEmail(c), location, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddHolding, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddHolding)
}

func (h *holdingHandler) GetHoldings(c *fiber.Ctx) error {
	location, err := domain.ParseLocation(c.Params("location"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHoldings, err)
	}

	items, err := h.holdingService.GetHoldings(c.UserContext(), userEmail(c), location)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetHoldings, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetHoldings)
}

func (h *holdingHandler) UpdateHolding(c *fiber.Ctx) error {
	location, err := domain.ParseLocation(c.Params("location"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateHolding, err)
	}

	req := new(domain.UpdateHoldingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateHolding, err)
	}

	res, err := h.holdingService.UpdateHolding(c.UserContext(), userEmail(c), location, c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateHolding, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateHolding)
}

func (h *holdingHandler) DeleteHolding(c *fiber.Ctx) error {
	location, err := domain.ParseLocation(c.Params("location"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteHolding, err)
	}

	if err := h.holdingService.DeleteHolding(c.UserContext(), userEmail(c), location, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteHolding, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteHolding)
}

func (h *holdingHandler) GetHoldingStats(c *fiber.Ctx) error {
	stats, err := h.holdingService.GetHoldingStats(c.UserContext(), userEmail(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}
