package handlers

import (
	"ZWH-Backend/domain"
	"ZWH-Backend/internal/utils/storage"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrProductNotFoundByBarcode),
		errors.Is(err, domain.ErrHoldingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, domain.ErrProductAlreadyExists),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict

	case errors.Is(err, domain.ErrUnauthorizedAccess):
		return fiber.StatusForbidden

	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized

	case errors.Is(err, domain.ErrInvalidLocation),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidHoldingDate),
		errors.Is(err, domain.ErrParseUUID),
		errors.Is(err, storage.ErrFileTypeNotAllowed):
		return fiber.StatusBadRequest

	case errors.Is(err, storage.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable

	default:
		return fiber.StatusInternalServerError
	}
}

func userEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("user_email").(string)
	return email
}
