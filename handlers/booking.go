package handlers

import (
	"fmt"
	"strings"

	"synergia-booking/database"
	"synergia-booking/errors"
	"synergia-booking/model"

	"github.com/gofiber/fiber/v2"
)

func notFound(c *fiber.Ctx) error {
	return errors.RaiseNotFoundError(c, fmt.Sprintf("Booking with ID %v not found", c.Params("id")))
}

// parseJSON decodes a JSON request body into out. Bodies of any other
// content type are ignored and out keeps its zero value, so form fields
// never reach the store.
func parseJSON(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 || !c.Is("json") {
		return nil
	}
	return c.BodyParser(out)
}

func (h *Handler) GetBookings(c *fiber.Ctx) error {
	ctx, cancel := h.storeContext(c)
	defer cancel()

	bookings, err := h.store.ListAll(ctx)
	if err != nil {
		return errors.RaiseInternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(bookings),
		"data":    bookings})
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	newBooking := new(model.Booking)
	if err := parseJSON(c, newBooking); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("Invalid booking payload: %v", err))
	}

	if missing := newBooking.MissingFields(); len(missing) > 0 {
		return errors.RaiseError(c, fiber.StatusBadRequest,
			"Please provide name, email, and event",
			"missing "+strings.Join(missing, ", "))
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	created, err := h.store.Create(ctx, *newBooking)
	if err != nil {
		return errors.RaiseInternalServerError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Booking created successfully",
		"data":    created})
}

func (h *Handler) GetBooking(c *fiber.Ctx) error {
	ctx, cancel := h.storeContext(c)
	defer cancel()

	booking, err := h.store.GetByID(ctx, c.Params("id"))
	if database.IsNotFound(err) {
		return notFound(c)
	} else if err != nil {
		return errors.RaiseInternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    booking})
}

func (h *Handler) UpdateBooking(c *fiber.Ctx) error {
	patch := new(model.BookingPatch)
	if err := parseJSON(c, patch); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("Invalid booking payload: %v", err))
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	updated, err := h.store.Update(ctx, c.Params("id"), *patch)
	if database.IsNotFound(err) {
		return notFound(c)
	} else if err != nil {
		return errors.RaiseInternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking updated successfully",
		"data":    updated})
}

func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	ctx, cancel := h.storeContext(c)
	defer cancel()

	removed, err := h.store.Delete(ctx, c.Params("id"))
	if database.IsNotFound(err) {
		return notFound(c)
	} else if err != nil {
		return errors.RaiseInternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking cancelled successfully",
		"data":    removed})
}

func (h *Handler) SearchByEmail(c *fiber.Ctx) error {
	return h.findBy(c, "email", "Please provide an email to search")
}

func (h *Handler) FilterByEvent(c *fiber.Ctx) error {
	return h.findBy(c, "event", "Please provide an event to filter by")
}

// findBy answers a substring query on field taken from the query parameter
// of the same name.
func (h *Handler) findBy(c *fiber.Ctx, field string, missingMessage string) error {
	pattern := c.Query(field)
	if pattern == "" {
		return errors.RaiseBadRequestError(c, missingMessage)
	}

	ctx, cancel := h.storeContext(c)
	defer cancel()

	bookings, err := h.store.FindByFilter(ctx, database.Filter{Field: field, Pattern: pattern})
	if err != nil {
		return errors.RaiseInternalServerError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(bookings),
		"data":    bookings})
}
