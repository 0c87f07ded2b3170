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

// TestimonialHandler handles testimonial routes. Creation is a multipart
// form with an optional photo; updates are JSON.
type TestimonialHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type testimonialBody struct {
	ID    types.FlexUint64 `json:"id"`
	Name  string           `json:"name"`
	Title string           `json:"title"`
	Quote string           `json:"quote"`
	Image string           `json:"image"`
}

// List handles GET /api/testimonial
// @Summary List testimonials
// @Tags Testimonials
// @Produce json
// @Success 200 {array} models.Testimonial
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /testimonial [get]
func (h *TestimonialHandler) List(c *fiber.Ctx) error {
	testimonials, err := services.ListTestimonials(h.DB)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "listTestimonials")
	}
	return c.Status(fiber.StatusOK).JSON(testimonials)
}

// Create handles POST /api/testimonial with a multipart form.
func (h *TestimonialHandler) Create(c *fiber.Ctx) error {
	name := c.FormValue("name")
	quote := c.FormValue("quote")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}
	if quote == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "quote is required")
	}

	image, err := saveImage(c, h.Cfg, "testimonials")
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createTestimonial upload")
	}

	testimonial := models.Testimonial{
		Name:  name,
		Title: c.FormValue("title"),
		Quote: quote,
		Image: image,
	}
	if err := services.CreateTestimonial(h.DB, &testimonial); err != nil {
		return utils.ServerErrorResponse(c, err, "createTestimonial")
	}
	return utils.CreatedResponse(c, testimonial)
}

// Update handles PUT /api/testimonial with a JSON body.
func (h *TestimonialHandler) Update(c *fiber.Ctx) error {
	var body testimonialBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	patch := models.Testimonial{
		Name:  body.Name,
		Title: body.Title,
		Quote: body.Quote,
		Image: body.Image,
	}
	testimonial, err := services.UpdateTestimonial(h.DB, body.ID.Uint64(), &patch)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "testimonial")
		}
		return utils.ServerErrorResponse(c, err, "updateTestimonial")
	}
	return c.Status(fiber.StatusOK).JSON(testimonial)
}

// Delete handles DELETE /api/testimonial?id=N
func (h *TestimonialHandler) Delete(c *fiber.Ctx) error {
	id, ok := queryID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}
	if err := services.DeleteTestimonial(h.DB, id); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "testimonial")
		}
		return utils.ServerErrorResponse(c, err, "deleteTestimonial")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Testimonial deleted successfully")
}
