package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/mirelleva/lunara/internal/services"
)

type cycleInput struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycles, err := handler.cycleService.List(user.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"cycles": cycles})
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input cycleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	cycle, err := handler.cycleService.Create(user.ID, input.StartDate, input.EndDate)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"cycle": cycle})
}

func (handler *Handler) EditCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycleID, ok := parseCycleID(c.Params("id"))
	if !ok {
		return handler.respondServiceError(c, services.ErrCycleNotFound)
	}

	var input cycleInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	cycle, err := handler.cycleService.Edit(cycleID, user.ID, input.StartDate, input.EndDate)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"cycle": cycle})
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycleID, ok := parseCycleID(c.Params("id"))
	if !ok {
		return handler.respondServiceError(c, services.ErrCycleNotFound)
	}

	if err := handler.cycleService.Delete(cycleID, user.ID); err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Cycle deleted"})
}

// Malformed ids are indistinguishable from absent ones.
func parseCycleID(raw string) (uint, bool) {
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, false
	}
	return uint(parsed), true
}
