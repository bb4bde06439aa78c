package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const RequestIDKey string = "requestid"

// RequestID tags every request with a UUID, reusing one sent by the client
// in the X-Request-ID header.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	})
}

func Recover() fiber.Handler {
	return recover.New()
}

func AccessLog() fiber.Handler {
	return logger.New(logger.Config{
		Format: "${time} ${locals:" + RequestIDKey + "} ${status} - ${latency} ${method} ${path}\n",
	})
}
