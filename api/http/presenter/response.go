package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform error envelope for every endpoint.
type ErrorResponse struct {
	Message string `json:"error"`
}

// JSON writes v with the given status code.
func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Error writes the error envelope with the given status code.
func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
