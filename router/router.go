package router

import (
	"synergia-booking/errors"
	"synergia-booking/handlers"
	"synergia-booking/middleware"

	"github.com/gofiber/fiber/v2"
)

// NewConfig returns the fiber settings the API runs with. Immutable copies
// every string fiber hands out, so nothing kept past a request aliases the
// reused request buffer.
func NewConfig() fiber.Config {
	return fiber.Config{
		ErrorHandler: errors.Handler,
		Immutable:    true,
	}
}

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Use(middleware.Recover(), middleware.RequestID(), middleware.AccessLog())

	app.Get("/", h.Welcome)
	app.Get("/health", h.Health)

	//Booking
	booking := app.Group("/api/bookings")
	booking.Get("/", h.GetBookings)
	booking.Post("/", h.CreateBooking)
	booking.Get("/search", h.SearchByEmail)
	booking.Get("/filter", h.FilterByEvent)
	booking.Get("/:id", h.GetBooking)
	booking.Put("/:id", h.UpdateBooking)
	booking.Delete("/:id", h.DeleteBooking)
}
