package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mirelleva/lunara/internal/models"
	"github.com/mirelleva/lunara/internal/services"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a store failure: logged here, surfaced
// to the client as a generic 500 with no internal detail.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return apiError(c, fiber.StatusBadRequest, validationErr.Message)
	case errors.Is(err, services.ErrCycleNotFound):
		return apiError(c, fiber.StatusNotFound, "Cycle not found")
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusBadRequest, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusBadRequest, "Invalid credentials")
	default:
		handler.log.WithError(err).WithField("path", c.Path()).Error("request failed on store operation")
		return apiError(c, fiber.StatusInternalServerError, "Server error")
	}
}
