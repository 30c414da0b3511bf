package response

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error envelope of every failed request
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a German message suitable for direct display
type ErrorDetail struct {
	StatusCode int               `json:"statusCode,omitempty"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
}

// Consumer-side fallback messages, keyed by status class
const (
	ServerErrorMessage        = "Serverfehler. Bitte versuchen Sie es in Kürze erneut."
	InvalidCredentialsMessage = "Ungültige Zugangsdaten."
	RequestFailedMessage      = "Anfrage fehlgeschlagen. Bitte prüfen Sie Ihre Eingaben."
)

// FallbackMessage returns the generic message for a status code whose
// response carried none
func FallbackMessage(status int) string {
	switch {
	case status >= fiber.StatusInternalServerError:
		return ServerErrorMessage
	case status == fiber.StatusUnauthorized, status == fiber.StatusForbidden:
		return InvalidCredentialsMessage
	default:
		return RequestFailedMessage
	}
}

// OK sends a 200 response with data as the body
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Error: ErrorDetail{Message: message},
	})
}

// BadRequest sends a 400 bad request response. fields, when given, maps
// each invalid field to its message.
func BadRequest(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{
		Error: ErrorDetail{Message: message, Fields: fields},
	})
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// Simulated sends an injected failure, echoing the status code in the body
func Simulated(c *fiber.Ctx, statusCode int) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Error: ErrorDetail{
			StatusCode: statusCode,
			Message:    SimulatedMessage(statusCode),
		},
	})
}

// SimulatedMessage is the message of an injected failure
func SimulatedMessage(statusCode int) string {
	return "Simulierte Antwort mit Status " + strconv.Itoa(statusCode) + "."
}
