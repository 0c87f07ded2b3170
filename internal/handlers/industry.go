package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/types"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// IndustryHandler handles industries-served routes. Creation is a multipart
// form with an optional illustration; updates are JSON.
type IndustryHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type industryBody struct {
	ID          types.FlexUint64 `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
}

// List handles GET /api/industries
// @Summary List industries
// @Tags Industries
// @Produce json
// @Success 200 {array} models.Industry
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /industries [get]
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	industries, err := services.ListIndustries(h.DB)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "listIndustries")
	}
	return c.Status(fiber.StatusOK).JSON(industries)
}

// Create handles POST /api/industries with a multipart form.
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}

	image, err := saveImage(c, h.Cfg, "industries")
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createIndustry upload")
	}

	industry := models.Industry{
		Name:        name,
		Description: c.FormValue("description"),
		Image:       image,
	}
	if err := services.CreateIndustry(h.DB, &industry); err != nil {
		return utils.ServerErrorResponse(c, err, "createIndustry")
	}
	return utils.CreatedResponse(c, industry)
}

// Update handles PUT /api/industries with a JSON body.
func (h *IndustryHandler) Update(c *fiber.Ctx) error {
	var body industryBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	patch := models.Industry{
		Name:        body.Name,
		Description: body.Description,
		Image:       body.Image,
	}
	industry, err := services.UpdateIndustry(h.DB, body.ID.Uint64(), &patch)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "industry")
		}
		return utils.ServerErrorResponse(c, err, "updateIndustry")
	}
	return c.Status(fiber.StatusOK).JSON(industry)
}

// Delete handles DELETE /api/industries?id=N
func (h *IndustryHandler) Delete(c *fiber.Ctx) error {
	id, ok := queryID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}
	if err := services.DeleteIndustry(h.DB, id); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "industry")
		}
		return utils.ServerErrorResponse(c, err, "deleteIndustry")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Industry deleted successfully")
}
