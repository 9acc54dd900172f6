package handlers

import (
	"errors"
	"log/slog"

	"github.com/atasoydev/liftledger/internal/dto"
	"github.com/atasoydev/liftledger/internal/records"
	"github.com/atasoydev/liftledger/internal/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps a service error to its HTTP response. Unknown errors
// become an opaque 500 and are logged with detail.
func serviceError(c *fiber.Ctx, err error) error {
	var code int
	switch {
	case errors.Is(err, services.ErrValidation):
		code = fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrSetNotFound),
		errors.Is(err, services.ErrExerciseNotFound),
		errors.Is(err, services.ErrUserNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		code = fiber.StatusForbidden
	case errors.Is(err, services.ErrRestricted):
		code = fiber.StatusConflict
	case errors.Is(err, records.ErrLedgerConflict):
		code = fiber.StatusConflict
	case errors.Is(err, services.ErrUsernameTaken):
		code = fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		code = fiber.StatusUnauthorized
	default:
		slog.Error("unhandled service error", "path", c.Path(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error: true, Message: err.Error(),
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
