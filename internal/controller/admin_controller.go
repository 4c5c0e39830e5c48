package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"velour_backend/internal/middleware"
	"velour_backend/pkg/config"
)

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin checks the configured credentials and sets the session cookie.
// The cookie value is the shared secret itself; RequireAdmin compares it
// verbatim on every admin request.
func AdminLogin(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Server error",
		})
	}

	admin := config.Get().Admin

	if input.Username != admin.Username || input.Password != admin.Password {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid credentials",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    admin.SecretKey,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
		Path:     "/",
	})

	return c.JSON(fiber.Map{"success": true})
}

func AdminLogout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
	})

	return c.JSON(fiber.Map{"success": true})
}
