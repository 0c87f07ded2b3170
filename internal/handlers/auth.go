package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// AuthHandler handles the admin session lifecycle. The session rides in an
// httpOnly cookie so the admin SPA never touches the token.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type loginBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth. Either username or email identifies the
// admin account.
// @Summary Log in as the site administrator
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginBody true "Admin credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body loginBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	identity := body.Username
	if identity == "" {
		identity = body.Email
	}
	if identity == "" || body.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "username and password are required")
	}

	admin, token, err := services.Login(h.DB, h.Cfg, identity, body.Password)
	if err != nil {
		if err.Error() == "invalid credentials" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return utils.ServerErrorResponse(c, err, "login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     services.TokenCookieName,
		Value:    token,
		Expires:  time.Now().Add(services.TokenTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"admin": fiber.Map{
			"id":       admin.ID,
			"username": admin.Username,
			"email":    admin.Email,
		},
	})
}

// Session handles GET /api/auth, the admin SPA's session probe.
// @Summary Check the current admin session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	token := c.Cookies(services.TokenCookieName)
	if token == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	claims, err := services.ValidateToken(h.Cfg, token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Not authenticated")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"authenticated": true,
		"username":      claims["username"],
	})
}

// Logout handles DELETE /api/auth by expiring the session cookie.
// @Summary Log out the current admin session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.MessageResponseStruct
// @Router /auth [delete]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     services.TokenCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return utils.MessageResponse(c, fiber.StatusOK, "Logged out")
}
