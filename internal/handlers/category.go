package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/types"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// CategoryHandler handles service category routes.
type CategoryHandler struct {
	DB *gorm.DB
}

type categoryBody struct {
	ID          types.FlexUint64 `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
}

// List handles GET /api/service/categories
// @Summary List service categories
// @Tags Categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /service/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := services.ListCategories(h.DB)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "listCategories")
	}
	return c.Status(fiber.StatusOK).JSON(categories)
}

// Create handles POST /api/service/categories
// @Summary Create a service category
// @Tags Categories
// @Accept json
// @Produce json
// @Param category body categoryBody true "Category"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /service/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var body categoryBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.Name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}

	category := models.Category{
		Name:        body.Name,
		Description: body.Description,
	}
	if err := services.CreateCategory(h.DB, &category); err != nil {
		return utils.ServerErrorResponse(c, err, "createCategory")
	}

	// The admin category form expects a {data: ...} envelope here, unlike the
	// other create endpoints which return the bare document.
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":          category.ID,
			"name":        category.Name,
			"description": category.Description,
		},
	})
}

// Update handles PUT /api/service/categories
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var body categoryBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	patch := models.Category{
		Name:        body.Name,
		Description: body.Description,
	}
	category, err := services.UpdateCategory(h.DB, body.ID.Uint64(), &patch)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "category")
		}
		return utils.ServerErrorResponse(c, err, "updateCategory")
	}
	return c.Status(fiber.StatusOK).JSON(category)
}

// Delete handles DELETE /api/service/categories?id=N
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := queryID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}
	if err := services.DeleteCategory(h.DB, id); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "category")
		}
		return utils.ServerErrorResponse(c, err, "deleteCategory")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Category deleted successfully")
}
