package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MannyGDy/Captive-Portal/internal/portal/service"
)

// Locals keys set by the auth middleware.
const (
	localUserID        = "userID"
	localUserEmail     = "userEmail"
	localAdminID       = "adminID"
	localAdminUsername = "adminUsername"
	localAdminRole     = "adminRole"
)

type AuthMiddleware struct {
	tokens service.TokenGenerator
}

func NewAuthMiddleware(tokens service.TokenGenerator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireUser gates guest routes on a valid user token.
func (m *AuthMiddleware) RequireUser(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return fail(c, fiber.StatusUnauthorized, "Access token required")
	}

	claims, err := m.tokens.VerifyUserToken(token)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	c.Locals(localUserID, claims.UserID)
	c.Locals(localUserEmail, claims.Email)

	return c.Next()
}

// RequireAdmin gates admin routes on a valid admin token. Any active
// admin gets full access; the role claim is carried but not used to
// narrow permissions.
func (m *AuthMiddleware) RequireAdmin(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return fail(c, fiber.StatusUnauthorized, "Admin token required")
	}

	claims, err := m.tokens.VerifyAdminToken(token)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Invalid or expired admin token")
	}

	c.Locals(localAdminID, claims.AdminID)
	c.Locals(localAdminUsername, claims.Username)
	c.Locals(localAdminRole, claims.Role)

	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
