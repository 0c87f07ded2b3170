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

// HeroHandler serves one hero banner variant (home, about, blog). The home
// variant accepts multipart uploads; about and blog accept JSON bodies with
// data-URL images, matching what each admin form sends.
type HeroHandler struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Variant  string
	Resource string
}

type heroJSONBody struct {
	ID         types.FlexUint64 `json:"id"`
	Title      string           `json:"title"`
	Disc       string           `json:"disc"`
	Image      string           `json:"image"`
	ButtonText string           `json:"buttonText"`
}

// Get handles GET for the variant's hero.
// @Summary Get the latest hero banner for a page
// @Tags Hero
// @Produce json
// @Success 200 {object} models.Hero
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /hero [get]
func (h *HeroHandler) Get(c *fiber.Ctx) error {
	hero, err := services.GetLatestHero(h.DB, h.Variant)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, h.Resource)
		}
		return utils.ServerErrorResponse(c, err, "getHero")
	}
	return c.Status(fiber.StatusOK).JSON(hero)
}

// CreateMultipart handles POST with a multipart form (home variant).
// @Summary Create a hero banner from a multipart form
// @Tags Hero
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Banner title"
// @Param disc formData string false "Banner description"
// @Param buttonText formData string false "Call-to-action label"
// @Param image formData file false "Banner image"
// @Success 201 {object} models.Hero
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /hero [post]
func (h *HeroHandler) CreateMultipart(c *fiber.Ctx) error {
	title := c.FormValue("title")
	if title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}

	image, err := saveImage(c, h.Cfg, h.Resource)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createHero upload")
	}

	hero := models.Hero{
		Variant:    h.Variant,
		Title:      title,
		Disc:       c.FormValue("disc"),
		Image:      image,
		ButtonText: c.FormValue("buttonText"),
	}
	if err := services.CreateHero(h.DB, &hero); err != nil {
		return utils.ServerErrorResponse(c, err, "createHero")
	}
	return utils.CreatedResponse(c, hero)
}

// CreateJSON handles POST with a JSON body (about and blog variants). An
// image arrives as a base64 data URL and is written to the upload directory.
func (h *HeroHandler) CreateJSON(c *fiber.Ctx) error {
	var body heroJSONBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}

	image, err := h.resolveImage(body.Image)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createHero upload")
	}

	hero := models.Hero{
		Variant:    h.Variant,
		Title:      body.Title,
		Disc:       body.Disc,
		Image:      image,
		ButtonText: body.ButtonText,
	}
	if err := services.CreateHero(h.DB, &hero); err != nil {
		return utils.ServerErrorResponse(c, err, "createHero")
	}
	return utils.CreatedResponse(c, hero)
}

// UpdateMultipart handles PUT with a multipart form (home variant). Empty
// fields are left untouched.
func (h *HeroHandler) UpdateMultipart(c *fiber.Ctx) error {
	id, ok := formID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	image, err := saveImage(c, h.Cfg, h.Resource)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "updateHero upload")
	}

	patch := models.Hero{
		Title:      c.FormValue("title"),
		Disc:       c.FormValue("disc"),
		Image:      image,
		ButtonText: c.FormValue("buttonText"),
	}
	hero, err := services.UpdateHero(h.DB, h.Variant, id, &patch)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, h.Resource)
		}
		return utils.ServerErrorResponse(c, err, "updateHero")
	}
	return c.Status(fiber.StatusOK).JSON(hero)
}

// UpdateJSON handles PUT with a JSON body (about and blog variants).
func (h *HeroHandler) UpdateJSON(c *fiber.Ctx) error {
	var body heroJSONBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	image, err := h.resolveImage(body.Image)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "updateHero upload")
	}

	patch := models.Hero{
		Title:      body.Title,
		Disc:       body.Disc,
		Image:      image,
		ButtonText: body.ButtonText,
	}
	hero, err := services.UpdateHero(h.DB, h.Variant, body.ID.Uint64(), &patch)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, h.Resource)
		}
		return utils.ServerErrorResponse(c, err, "updateHero")
	}
	return c.Status(fiber.StatusOK).JSON(hero)
}

// Delete handles DELETE ?id=N for the variant's hero.
// @Summary Delete a hero banner
// @Tags Hero
// @Produce json
// @Param id query int true "Hero id"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /hero [delete]
func (h *HeroHandler) Delete(c *fiber.Ctx) error {
	id, ok := queryID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}
	if err := services.DeleteHero(h.DB, h.Variant, id); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, h.Resource)
		}
		return utils.ServerErrorResponse(c, err, "deleteHero")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Hero deleted successfully")
}

// resolveImage stores a data-URL image and returns its web path. Plain paths
// (already-uploaded images echoed back by the admin form) pass through.
func (h *HeroHandler) resolveImage(image string) (string, error) {
	if len(image) > 5 && image[:5] == "data:" {
		return utils.SaveDataURL(image, h.Cfg.UploadDir, h.Resource)
	}
	return image, nil
}
