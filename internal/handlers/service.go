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

// ServiceHandler handles service catalog routes. Creation arrives as a
// multipart form with JSON-encoded section fields; updates arrive as JSON.
type ServiceHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type serviceUpdateBody struct {
	ID              types.FlexUint64            `json:"id"`
	CategoryID      string                      `json:"categoryId"`
	Slug            string                      `json:"slug"`
	HeroSection     *models.ServiceHeroSection  `json:"heroSection"`
	CardSections    []models.ServiceCardSection `json:"cardSections"`
	ServiceCardView *models.ServiceCardView     `json:"serviceCardView"`
	Content         string                      `json:"content"`
}

// Get handles GET /api/service with optional ?id, ?slug, or ?categoryId.
// Without a filter it returns the full list.
// @Summary Get services
// @Tags Services
// @Produce json
// @Param id query int false "Service id"
// @Param slug query string false "Service slug"
// @Param categoryId query string false "Category id filter"
// @Success 200 {array} models.Service
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /service [get]
func (h *ServiceHandler) Get(c *fiber.Ctx) error {
	if id, ok := queryID(c); ok {
		service, err := services.GetServiceByID(h.DB, id)
		if err != nil {
			if err.Error() == "not found" {
				return utils.NotFoundResponse(c, "service")
			}
			return utils.ServerErrorResponse(c, err, "getService")
		}
		return c.Status(fiber.StatusOK).JSON(service)
	}

	if s := c.Query("slug"); s != "" {
		service, err := services.GetServiceBySlug(h.DB, s)
		if err != nil {
			if err.Error() == "not found" {
				return utils.NotFoundResponse(c, "service")
			}
			return utils.ServerErrorResponse(c, err, "getServiceBySlug")
		}
		return c.Status(fiber.StatusOK).JSON(service)
	}

	if categoryID := c.Query("categoryId"); categoryID != "" {
		list, err := services.ListServicesByCategory(h.DB, categoryID)
		if err != nil {
			return utils.ServerErrorResponse(c, err, "listServicesByCategory")
		}
		return c.Status(fiber.StatusOK).JSON(list)
	}

	return h.List(c)
}

// List handles GET /api/services (the listing-page alias).
// @Summary List all services
// @Tags Services
// @Produce json
// @Success 200 {array} models.Service
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	list, err := services.ListServices(h.DB)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "listServices")
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

// Create handles POST /api/service. The admin form sends a multipart body:
// scalar fields plus cardSections and serviceCardView as JSON strings and an
// optional hero image file.
// @Summary Create a service
// @Tags Services
// @Accept multipart/form-data
// @Produce json
// @Param categoryId formData string true "Category id"
// @Param title formData string true "Hero title"
// @Param description formData string false "Hero description"
// @Param cardSections formData string false "Card sections JSON"
// @Param serviceCardView formData string false "Card view JSON"
// @Param content formData string false "Body content"
// @Param image formData file false "Hero image"
// @Success 201 {object} models.Service
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /service [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	categoryID := c.FormValue("categoryId")
	title := c.FormValue("title")
	if categoryID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "categoryId is required")
	}
	if title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}

	image, err := saveImage(c, h.Cfg, "services")
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createService upload")
	}

	heroSection, err := marshalColumn(models.ServiceHeroSection{
		Title:       title,
		Description: c.FormValue("description"),
		Image:       image,
	})
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createService heroSection")
	}

	service := models.Service{
		CategoryID:      categoryID,
		Slug:            c.FormValue("slug"),
		HeroSection:     heroSection,
		CardSections:    jsonColumn(c.FormValue("cardSections")),
		ServiceCardView: jsonColumn(c.FormValue("serviceCardView")),
		Content:         c.FormValue("content"),
	}
	if err := services.CreateService(h.DB, &service, title); err != nil {
		return utils.ServerErrorResponse(c, err, "createService")
	}
	return utils.CreatedResponse(c, service)
}

// Update handles PATCH /api/service with a JSON body. Omitted fields are
// left untouched.
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	var body serviceUpdateBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	patch := models.Service{
		CategoryID: body.CategoryID,
		Slug:       body.Slug,
		Content:    body.Content,
	}
	if body.HeroSection != nil {
		col, err := marshalColumn(body.HeroSection)
		if err != nil {
			return utils.ServerErrorResponse(c, err, "updateService heroSection")
		}
		patch.HeroSection = col
	}
	if body.CardSections != nil {
		col, err := marshalColumn(body.CardSections)
		if err != nil {
			return utils.ServerErrorResponse(c, err, "updateService cardSections")
		}
		patch.CardSections = col
	}
	if body.ServiceCardView != nil {
		col, err := marshalColumn(body.ServiceCardView)
		if err != nil {
			return utils.ServerErrorResponse(c, err, "updateService serviceCardView")
		}
		patch.ServiceCardView = col
	}

	service, err := services.UpdateService(h.DB, body.ID.Uint64(), &patch)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "service")
		}
		return utils.ServerErrorResponse(c, err, "updateService")
	}
	return c.Status(fiber.StatusOK).JSON(service)
}

// Delete handles DELETE /api/service with {id} in the JSON body.
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := bodyID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}
	if err := services.DeleteService(h.DB, id); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "service")
		}
		return utils.ServerErrorResponse(c, err, "deleteService")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Service deleted successfully")
}
