package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/types"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// FooterHandler handles the site footer block, a singleton read by latest
// CreatedAt like the hero variants.
type FooterHandler struct {
	DB *gorm.DB
}

type footerBody struct {
	ID          types.FlexUint64    `json:"id"`
	Description string              `json:"description"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Address     string              `json:"address"`
	SocialLinks []models.FooterLink `json:"socialLinks"`
}

// Get handles GET /api/footer
// @Summary Get the footer content block
// @Tags Footer
// @Produce json
// @Success 200 {object} models.Footer
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /footer [get]
func (h *FooterHandler) Get(c *fiber.Ctx) error {
	footer, err := services.GetLatestFooter(h.DB)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "footer")
		}
		return utils.ServerErrorResponse(c, err, "getFooter")
	}
	return c.Status(fiber.StatusOK).JSON(footer)
}

// Create handles POST /api/footer
func (h *FooterHandler) Create(c *fiber.Ctx) error {
	var body footerBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}

	links, err := marshalColumn(body.SocialLinks)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createFooter socialLinks")
	}

	footer := models.Footer{
		Description: body.Description,
		Email:       body.Email,
		Phone:       body.Phone,
		Address:     body.Address,
		SocialLinks: links,
	}
	if err := services.CreateFooter(h.DB, &footer); err != nil {
		return utils.ServerErrorResponse(c, err, "createFooter")
	}
	return utils.CreatedResponse(c, footer)
}

// Update handles PUT /api/footer
func (h *FooterHandler) Update(c *fiber.Ctx) error {
	var body footerBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	patch := models.Footer{
		Description: body.Description,
		Email:       body.Email,
		Phone:       body.Phone,
		Address:     body.Address,
	}
	if body.SocialLinks != nil {
		col, err := marshalColumn(body.SocialLinks)
		if err != nil {
			return utils.ServerErrorResponse(c, err, "updateFooter socialLinks")
		}
		patch.SocialLinks = col
	}

	footer, err := services.UpdateFooter(h.DB, body.ID.Uint64(), &patch)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "footer")
		}
		return utils.ServerErrorResponse(c, err, "updateFooter")
	}
	return c.Status(fiber.StatusOK).JSON(footer)
}
