package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired verifies the bearer token and loads the owning user into the
// request context. Every failure mode is the same 401 so a caller learns
// nothing about why a token was rejected.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	authorization := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authorization, "Bearer ") {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	userID, err := handler.parseToken(strings.TrimPrefix(authorization, "Bearer "))
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}
