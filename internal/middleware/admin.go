package middleware

import (
	"github.com/gofiber/fiber/v2"

	"velour_backend/pkg/config"
)

const SessionCookie = "admin_session"

// RequireAdmin gates a route on the admin session cookie. The cookie value
// must equal the configured secret key.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := c.Cookies(SessionCookie)

		if session == "" || session != config.Get().Admin.SecretKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		return c.Next()
	}
}
