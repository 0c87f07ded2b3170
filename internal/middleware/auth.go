package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/types"
)

// AuthAdmin validates the admin session cookie on mutating content routes
func AuthAdmin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(services.TokenCookieName)
		if token == "" {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: fmt.Sprintf("Session cookie %q not found", services.TokenCookieName),
				Type:    "admin.authorization",
			}
		}

		claims, err := services.ValidateToken(cfg, token)
		if err != nil {
			return &types.CustomError{
				Code:    fiber.StatusUnauthorized,
				Message: fmt.Sprintf("Invalid session: %v", err),
				Type:    "admin.authorization",
			}
		}

		// Set admin identity in context
		if username, ok := claims["username"]; ok {
			c.Locals("admin", username)
		}

		return c.Next()
	}
}
