package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velour_backend/pkg/config"
)

func TestRequireAdmin(t *testing.T) {
	secret := config.Get().Admin.SecretKey

	app := fiber.New()
	app.Get("/admin-only", RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name       string
		cookie     string
		wantStatus int
	}{
		{"no cookie", "", http.StatusUnauthorized},
		{"wrong value", "not-the-secret", http.StatusUnauthorized},
		{"valid session", secret, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
