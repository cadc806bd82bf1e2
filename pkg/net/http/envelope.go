// Package http provides the JSON envelope and response helpers every
// handler in internal/adapters/http/in uses, matching spec.md §6.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LerianStudio/midaz-credits/pkg"
)

// Success is the envelope every 2xx response is wrapped in.
type Success struct {
	Success    bool `json:"success"`
	Data       any  `json:"data,omitempty"`
	Pagination any  `json:"pagination,omitempty"`
}

// Failure is the envelope every non-2xx response is wrapped in.
type Failure struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"requestId"`
}

// ErrorBody is the error object nested in Failure.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(Success{Success: true, Data: data})
}

// OKPaginated writes a 200 success envelope with a pagination block.
func OKPaginated(c *fiber.Ctx, data any, pagination any) error {
	return c.Status(fiber.StatusOK).JSON(Success{Success: true, Data: data, Pagination: pagination})
}

// Created writes a 201 success envelope.
func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(Success{Success: true, Data: data})
}

// Healthy writes a 200 health response (not wrapped in the standard
// envelope — spec.md §6 leaves /health's body shape unspecified beyond
// the status code).
func Healthy(c *fiber.Ctx, detail any) error {
	return c.Status(fiber.StatusOK).JSON(detail)
}

// Unhealthy writes a 503 health response.
func Unhealthy(c *fiber.Ctx, detail any) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(detail)
}

func fail(c *fiber.Ctx, status int, code, message string, details any) error {
	return c.Status(status).JSON(Failure{
		Success: false,
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		RequestID: pkg.RequestIDFromContext(c.UserContext()),
	})
}
