package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MannyGDy/Captive-Portal/internal/portal/dto"
	"github.com/MannyGDy/Captive-Portal/internal/portal/service"
	"github.com/MannyGDy/Captive-Portal/pkg/logger"
)

// Headers the gateway hardware forwards with the login request.
const (
	headerMACAddress     = "X-MAC-Address"
	headerGatewaySession = "X-Mikrotik-Session"
)

type AuthHandler struct {
	users *service.UserService
	log   logger.Logger
}

func NewAuthHandler(users *service.UserService, log logger.Logger) *AuthHandler {
	return &AuthHandler{users: users, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input.Normalize()
	if errs := input.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}

	result, err := h.users.Register(c.Context(), input)
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful! You can now login with your email and phone number.",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	input.Normalize()
	if errs := input.Validate(); len(errs) > 0 {
		return failValidation(c, errs)
	}

	// Session metadata comes from the request, not the body.
	input.IPAddress = c.IP()
	input.MACAddress = c.Get(headerMACAddress)
	input.GatewaySessionID = c.Get(headerGatewaySession)

	result, err := h.users.Login(c.Context(), input)
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful! You now have internet access.",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	email, _ := c.Locals(localUserEmail).(string)

	user, err := h.users.Profile(c.Context(), email)
	if err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	email, _ := c.Locals(localUserEmail).(string)

	if err := h.users.Logout(c.Context(), email); err != nil {
		return mapServiceError(c, h.log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

func (h *AuthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Authentication service is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
