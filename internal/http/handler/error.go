package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"finengine/internal/engine"
	"finengine/internal/http/middleware"
	"finengine/internal/model"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "BAD_REQUEST", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeNotFound writes the engine's 404 body listing every valid endpoint.
func writeNotFound(c *fiber.Ctx, eng *engine.Engine) error {
	return c.Status(fiber.StatusNotFound).JSON(model.NotFound{
		Error:              model.NotFoundMessage,
		AvailableEndpoints: eng.Endpoints(),
	})
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler(eng *engine.Engine) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Parse failures are answered here without running the middleware chain.
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")

		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			return writeNotFound(c, eng)
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusRequestHeaderFieldsTooLarge:
			return writeError(c, status, "HEADERS_TOO_LARGE", "request headers too large")
		default:
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
	}
}
