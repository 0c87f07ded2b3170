package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// CompanyHandler handles the trusted-companies logo strip. The route path
// keeps the historical "tructedCompany" spelling the admin UI requests.
// Entries have no update operation; logos are replaced by delete-and-create.
type CompanyHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// List handles GET /api/tructedCompany
// @Summary List trusted company logos
// @Tags Companies
// @Produce json
// @Success 200 {array} models.TrustedCompany
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /tructedCompany [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	companies, err := services.ListTrustedCompanies(h.DB)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "listTrustedCompanies")
	}
	return c.Status(fiber.StatusOK).JSON(companies)
}

// Create handles POST /api/tructedCompany with a multipart form.
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}

	image, err := saveImage(c, h.Cfg, "companies")
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createTrustedCompany upload")
	}

	company := models.TrustedCompany{
		Name:  name,
		Image: image,
	}
	if err := services.CreateTrustedCompany(h.DB, &company); err != nil {
		return utils.ServerErrorResponse(c, err, "createTrustedCompany")
	}
	return utils.CreatedResponse(c, company)
}

// Delete handles DELETE /api/tructedCompany?id=N
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, ok := queryID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}
	if err := services.DeleteTrustedCompany(h.DB, id); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "company")
		}
		return utils.ServerErrorResponse(c, err, "deleteTrustedCompany")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Company deleted successfully")
}
