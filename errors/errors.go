package errors

import (
	"github.com/gofiber/fiber/v2"
)

func RaiseError(context *fiber.Ctx, status int, message string, detail string) error {
	body := fiber.Map{
		"success": false,
		"message": message}
	if detail != "" {
		body["error"] = detail
	}
	return context.Status(status).JSON(body)
}

func RaiseBadRequestError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusBadRequest, message, "")
}

func RaiseNotFoundError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusNotFound, message, "")
}

// RaiseInternalServerError hides the cause behind a generic message and
// passes the underlying error text along in the error field.
func RaiseInternalServerError(context *fiber.Ctx, err error) error {
	return RaiseError(context, fiber.StatusInternalServerError, "Server Error", err.Error())
}

func RaiseUnavailableError(context *fiber.Ctx, err error) error {
	return RaiseError(context, fiber.StatusServiceUnavailable, "Service Unavailable", err.Error())
}

// Handler is the fiber error handler. Errors that escape a route, including
// unmatched routes and recovered panics, are written as envelopes.
func Handler(context *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return RaiseError(context, e.Code, e.Message, "")
	}
	return RaiseInternalServerError(context, err)
}
