package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// SettingsHandler handles the admin credential settings and the password
// reset flow.
type SettingsHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type settingsBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordBody struct {
	Identity string `json:"identity"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type resetPasswordBody struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Get handles GET /api/admin/settings.
// @Summary Get the admin account settings
// @Tags Admin
// @Produce json
// @Success 200 {object} models.Admin
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /admin/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	admin, err := services.GetAdmin(h.DB)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "admin")
		}
		return utils.ServerErrorResponse(c, err, "getAdmin")
	}
	return c.Status(fiber.StatusOK).JSON(admin)
}

// Update handles PUT /api/admin/settings. Empty fields are left untouched;
// sending a password rotates the stored hash.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var body settingsBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.Username == "" && body.Email == "" && body.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "nothing to update")
	}

	admin, err := services.UpdateAdminSettings(h.DB, body.Username, body.Email, body.Password)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "admin")
		}
		return utils.ServerErrorResponse(c, err, "updateAdminSettings")
	}
	return c.Status(fiber.StatusOK).JSON(admin)
}

// ForgotPassword handles POST /api/admin/forgot-password. The response does
// not reveal whether the account exists; mail delivery is best-effort.
// @Summary Request a password reset token
// @Tags Admin
// @Accept json
// @Produce json
// @Param identity body forgotPasswordBody true "Admin username or email"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /admin/forgot-password [post]
func (h *SettingsHandler) ForgotPassword(c *fiber.Ctx) error {
	var body forgotPasswordBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	identity := body.Identity
	if identity == "" {
		identity = body.Username
	}
	if identity == "" {
		identity = body.Email
	}
	if identity == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "username or email is required")
	}

	admin, token, err := services.CreateResetToken(h.DB, identity)
	if err != nil {
		if err.Error() != "not found" {
			log.Printf("forgot-password token creation failed: %v", err)
		}
	} else if err := services.SendPasswordResetMail(h.Cfg, admin, token); err != nil {
		log.Printf("forgot-password mail failed: %v", err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, "If the account exists, a reset mail was sent")
}

// ResetPassword handles POST /api/admin/reset-password with {token, password}.
// @Summary Reset the admin password with a token
// @Tags Admin
// @Accept json
// @Produce json
// @Param reset body resetPasswordBody true "Reset token and new password"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /admin/reset-password [post]
func (h *SettingsHandler) ResetPassword(c *fiber.Ctx) error {
	var body resetPasswordBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.Token == "" || body.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "token and password are required")
	}

	if err := services.ResetPassword(h.DB, body.Token, body.Password); err != nil {
		if err.Error() == "invalid token" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired token")
		}
		return utils.ServerErrorResponse(c, err, "resetPassword")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Password updated")
}
