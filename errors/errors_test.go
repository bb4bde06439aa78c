package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Test struct {
	description     string
	route           string
	expectedCode    int
	expectedMessage string
	expectedError   string
}

func TestRaiseErrors(t *testing.T) {
	tests := []Test{
		{description: "bad request", route: "/bad", expectedCode: 400, expectedMessage: "Please provide name"},
		{description: "not found", route: "/missing", expectedCode: 404, expectedMessage: "Booking not found"},
		{description: "internal error", route: "/broken", expectedCode: 500, expectedMessage: "Server Error", expectedError: "db down"},
		{description: "unavailable", route: "/down", expectedCode: 503, expectedMessage: "Service Unavailable", expectedError: "no ping"},
		{description: "fiber error", route: "/teapot", expectedCode: 418, expectedMessage: "short and stout"},
		{description: "unmatched route", route: "/nowhere", expectedCode: 404, expectedMessage: "Cannot GET /nowhere"},
		{description: "returned error", route: "/returned", expectedCode: 500, expectedMessage: "Server Error", expectedError: "escaped"},
	}

	app := fiber.New(fiber.Config{ErrorHandler: Handler})
	app.Get("/bad", func(c *fiber.Ctx) error { return RaiseBadRequestError(c, "Please provide name") })
	app.Get("/missing", func(c *fiber.Ctx) error { return RaiseNotFoundError(c, "Booking not found") })
	app.Get("/broken", func(c *fiber.Ctx) error { return RaiseInternalServerError(c, stderrors.New("db down")) })
	app.Get("/down", func(c *fiber.Ctx) error { return RaiseUnavailableError(c, stderrors.New("no ping")) })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/returned", func(c *fiber.Ctx) error { return stderrors.New("escaped") })

	for _, test := range tests {
		res, err := app.Test(httptest.NewRequest("GET", test.route, nil), -1)
		require.NoError(t, err, test.description)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body), test.description)

		assert.Equalf(t, test.expectedCode, res.StatusCode, test.description)
		assert.Equalf(t, false, body["success"], test.description)
		assert.Equalf(t, test.expectedMessage, body["message"], test.description)
		if test.expectedError == "" {
			assert.NotContainsf(t, body, "error", test.description)
		} else {
			assert.Equalf(t, test.expectedError, body["error"], test.description)
		}
	}
}
