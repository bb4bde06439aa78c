package handlers

import (
	"context"
	"time"

	"synergia-booking/database"
	"synergia-booking/errors"

	"github.com/gofiber/fiber/v2"
)

const WelcomeMessage string = "Welcome to Synergia Event Booking API"

type Handler struct {
	store   database.Store
	timeout time.Duration
}

// New builds the route handlers around store. A zero timeout leaves store
// calls bounded only by the request itself.
func New(store database.Store, timeout time.Duration) *Handler {
	return &Handler{store: store, timeout: timeout}
}

func (h *Handler) storeContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

func (h *Handler) Welcome(c *fiber.Ctx) error {
	return c.SendString(WelcomeMessage)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	ctx, cancel := h.storeContext(c)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return errors.RaiseUnavailableError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "ok"})
}
