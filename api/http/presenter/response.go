package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
}

// WarningResponse is a recoverable validation message, rendered by the
// page as a warning rather than a failure.
type WarningResponse struct {
	Warning string `json:"warning"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func Warning(c *fiber.Ctx, message string) error {
	return JSON(c, fiber.StatusBadRequest, WarningResponse{Warning: message})
}
