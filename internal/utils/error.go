package utils

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON body every error reply carries.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Code    int    `json:"code,omitempty"`
	Status  string `json:"status,omitempty"`
}

func sendError(c *fiber.Ctx, httpCode int, message, details string) error {
	return c.Status(httpCode).JSON(ErrorResponse{
		Error:   message,
		Details: details,
		Code:    httpCode,
	})
}

// SendError replies with the given status code and message.
func SendError(c *fiber.Ctx, httpCode int, message string) error {
	return c.Status(httpCode).JSON(ErrorResponse{
		Error:  message,
		Status: http.StatusText(httpCode),
		Code:   httpCode,
	})
}

// SendValidationError replies 422 naming the failing field.
func SendValidationError(c *fiber.Ctx, field string, message string) error {
	return sendError(c, http.StatusUnprocessableEntity, "Validation failed", field+": "+message)
}

// SendNotFoundError replies 404 naming the missing resource.
func SendNotFoundError(c *fiber.Ctx, resource string) error {
	return sendError(c, http.StatusNotFound, "Resource not found", resource+" does not exist")
}

func SendUnauthorizedError(c *fiber.Ctx, message string) error {
	return sendError(c, http.StatusUnauthorized, "Unauthorized", message)
}

func SendForbiddenError(c *fiber.Ctx, message string) error {
	return sendError(c, http.StatusForbidden, "Forbidden", message)
}

func SendInternalServerError(c *fiber.Ctx, message string) error {
	return sendError(c, http.StatusInternalServerError, "Internal server error", message)
}
