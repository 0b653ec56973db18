package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/slinkhq/slink-server/pkg/internal/services"
)

// authMiddleware resolves the bearer token into an account and exposes it via
// c.Locals("user"). Handlers behind it can assume a valid identity.
func authMiddleware(c *fiber.Ctx) error {
	tk := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	if len(tk) == 0 {
		tk = c.Cookies("slink_session")
	}
	if len(tk) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "no session token provided")
	}

	user, err := services.Authenticate(tk)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	c.Locals("user", user)
	return c.Next()
}
