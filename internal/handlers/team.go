package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/types"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// TeamHandler handles team tab routes. Member photos are referenced by path
// inside the cards payload.
type TeamHandler struct {
	DB *gorm.DB
}

type teamTabBody struct {
	ID      types.FlexUint64  `json:"id"`
	TabName string            `json:"tabName"`
	Cards   []models.TeamCard `json:"cards"`
}

// List handles GET /api/team
// @Summary List team tabs
// @Tags Team
// @Produce json
// @Success 200 {array} models.TeamTab
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /team [get]
func (h *TeamHandler) List(c *fiber.Ctx) error {
	tabs, err := services.ListTeamTabs(h.DB)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "listTeamTabs")
	}
	return c.Status(fiber.StatusOK).JSON(tabs)
}

// Create handles POST /api/team
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var body teamTabBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.TabName == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "tabName is required")
	}

	cards, err := marshalColumn(body.Cards)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createTeamTab cards")
	}

	tab := models.TeamTab{
		TabName: body.TabName,
		Cards:   cards,
	}
	if err := services.CreateTeamTab(h.DB, &tab); err != nil {
		return utils.ServerErrorResponse(c, err, "createTeamTab")
	}
	return utils.CreatedResponse(c, tab)
}

// Update handles PUT /api/team
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	var body teamTabBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	patch := models.TeamTab{TabName: body.TabName}
	if body.Cards != nil {
		col, err := marshalColumn(body.Cards)
		if err != nil {
			return utils.ServerErrorResponse(c, err, "updateTeamTab cards")
		}
		patch.Cards = col
	}

	tab, err := services.UpdateTeamTab(h.DB, body.ID.Uint64(), &patch)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "team tab")
		}
		return utils.ServerErrorResponse(c, err, "updateTeamTab")
	}
	return c.Status(fiber.StatusOK).JSON(tab)
}

// Delete handles DELETE /api/team?id=N
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	id, ok := queryID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}
	if err := services.DeleteTeamTab(h.DB, id); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "team tab")
		}
		return utils.ServerErrorResponse(c, err, "deleteTeamTab")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Team tab deleted successfully")
}
