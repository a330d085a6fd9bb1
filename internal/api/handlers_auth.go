package api

import "github.com/gofiber/fiber/v2"

type signupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) Signup(c *fiber.Ctx) error {
	var input signupInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Signup(input.Name, input.Email, input.Password)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Login(input.Email, input.Password)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"token": token, "user": user})
}
