package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/types"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// CaseStudyHandler handles case study routes. All bodies are JSON; card
// images are uploaded separately through the blog/hero flows and referenced
// by path inside the cards payload.
type CaseStudyHandler struct {
	DB *gorm.DB
}

type caseStudyBody struct {
	ID                types.FlexUint64       `json:"id"`
	Title             string                 `json:"title"`
	Slug              string                 `json:"slug"`
	HeaderTitle       string                 `json:"headerTitle"`
	HeaderDescription string                 `json:"headerDescription"`
	Content           string                 `json:"content"`
	Cards             []models.CaseStudyCard `json:"cards"`
}

// Get handles GET /api/caseStudy with optional ?id or ?slug. A single lookup
// that matches nothing answers 404; the unfiltered list answers 200 with an
// empty array.
// @Summary Get case studies
// @Tags CaseStudies
// @Produce json
// @Param id query int false "Case study id"
// @Param slug query string false "Case study slug"
// @Success 200 {array} models.CaseStudy
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /caseStudy [get]
func (h *CaseStudyHandler) Get(c *fiber.Ctx) error {
	if id, ok := queryID(c); ok {
		study, err := services.GetCaseStudyByID(h.DB, id)
		if err != nil {
			if err.Error() == "not found" {
				return utils.NotFoundResponse(c, "case study")
			}
			return utils.ServerErrorResponse(c, err, "getCaseStudy")
		}
		return c.Status(fiber.StatusOK).JSON(study)
	}

	if s := c.Query("slug"); s != "" {
		study, err := services.GetCaseStudyBySlug(h.DB, s)
		if err != nil {
			if err.Error() == "not found" {
				return utils.NotFoundResponse(c, "case study")
			}
			return utils.ServerErrorResponse(c, err, "getCaseStudyBySlug")
		}
		return c.Status(fiber.StatusOK).JSON(study)
	}

	studies, err := services.ListCaseStudies(h.DB)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "listCaseStudies")
	}
	return c.Status(fiber.StatusOK).JSON(studies)
}

// Create handles POST /api/caseStudy.
// @Summary Create a case study
// @Tags CaseStudies
// @Accept json
// @Produce json
// @Param caseStudy body caseStudyBody true "Case study"
// @Success 201 {object} models.CaseStudy
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /caseStudy [post]
func (h *CaseStudyHandler) Create(c *fiber.Ctx) error {
	var body caseStudyBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.Title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}

	cards, err := marshalColumn(body.Cards)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createCaseStudy cards")
	}

	study := models.CaseStudy{
		Title:             body.Title,
		Slug:              body.Slug,
		HeaderTitle:       body.HeaderTitle,
		HeaderDescription: body.HeaderDescription,
		Content:           body.Content,
		Cards:             cards,
	}
	if err := services.CreateCaseStudy(h.DB, &study); err != nil {
		return utils.ServerErrorResponse(c, err, "createCaseStudy")
	}
	return utils.CreatedResponse(c, study)
}

// Update handles PUT /api/caseStudy. Omitted fields are left untouched; the
// slug is fixed at creation and never rewritten here.
func (h *CaseStudyHandler) Update(c *fiber.Ctx) error {
	var body caseStudyBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	patch := models.CaseStudy{
		Title:             body.Title,
		HeaderTitle:       body.HeaderTitle,
		HeaderDescription: body.HeaderDescription,
		Content:           body.Content,
	}
	if body.Cards != nil {
		col, err := marshalColumn(body.Cards)
		if err != nil {
			return utils.ServerErrorResponse(c, err, "updateCaseStudy cards")
		}
		patch.Cards = col
	}

	study, err := services.UpdateCaseStudy(h.DB, body.ID.Uint64(), &patch)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "case study")
		}
		return utils.ServerErrorResponse(c, err, "updateCaseStudy")
	}
	return c.Status(fiber.StatusOK).JSON(study)
}

// Delete handles DELETE /api/caseStudy with {id} in the JSON body.
func (h *CaseStudyHandler) Delete(c *fiber.Ctx) error {
	id, ok := bodyID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}
	if err := services.DeleteCaseStudy(h.DB, id); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "case study")
		}
		return utils.ServerErrorResponse(c, err, "deleteCaseStudy")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Case study deleted successfully")
}
