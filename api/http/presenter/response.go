package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the single error shape every failure maps to.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}

// ErrorDetails attaches the originating message for diagnosability.
func ErrorDetails(c *fiber.Ctx, status int, message, details string) error {
	return JSON(c, status, ErrorResponse{Error: message, Details: details})
}
