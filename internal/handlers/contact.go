package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/types"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// ContactHandler handles the public contact form and its admin inbox.
type ContactHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type contactSubmitBody struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptchaToken"`
}

type contactStatusBody struct {
	ID     types.FlexUint64 `json:"id"`
	Status string           `json:"status"`
}

// Submit handles POST /api/contact, the only unauthenticated write in the
// API. Recaptcha verification and the notification mail are best-effort:
// their failures are logged, the submission is stored regardless.
// @Summary Submit the public contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param submission body contactSubmitBody true "Contact form fields"
// @Success 201 {object} models.ContactSubmission
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var body contactSubmitBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.Name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name is required")
	}
	if body.Email == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "email is required")
	}
	if body.Phone == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "phone is required")
	}
	if body.Message == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "message is required")
	}

	if h.Cfg.RecaptchaSecret != "" && body.RecaptchaToken != "" {
		if err := services.VerifyRecaptcha(h.Cfg.RecaptchaSecret, body.RecaptchaToken, c.IP()); err != nil {
			log.Printf("recaptcha verification failed, accepting submission anyway: %v", err)
		}
	}

	first, last := services.SplitName(body.Name)
	submission := models.ContactSubmission{
		FirstName: first,
		LastName:  last,
		Email:     body.Email,
		Phone:     body.Phone,
		Message:   body.Message,
		Status:    models.ContactStatusNew,
	}
	if err := services.CreateContactSubmission(h.DB, &submission); err != nil {
		return utils.ServerErrorResponse(c, err, "createContactSubmission")
	}

	if err := services.SendContactNotification(h.Cfg, &submission); err != nil {
		log.Printf("contact notification mail failed for submission %d: %v", submission.ID, err)
	}

	return utils.CreatedResponse(c, submission)
}

// List handles GET /api/contact (admin inbox).
// @Summary List contact submissions
// @Tags Contact
// @Produce json
// @Success 200 {array} models.ContactSubmission
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /contact [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	submissions, err := services.ListContactSubmissions(h.DB)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "listContactSubmissions")
	}
	return c.Status(fiber.StatusOK).JSON(submissions)
}

// UpdateStatus handles PATCH /api/contact with {id, status}.
func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	var body contactStatusBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	submission, err := services.UpdateContactStatus(h.DB, body.ID.Uint64(), body.Status)
	if err != nil {
		switch err.Error() {
		case "not found":
			return utils.NotFoundResponse(c, "submission")
		case "invalid status":
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid status")
		}
		return utils.ServerErrorResponse(c, err, "updateContactStatus")
	}
	return c.Status(fiber.StatusOK).JSON(submission)
}

// Delete handles DELETE /api/contact with {id} in the JSON body.
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, ok := bodyID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}
	if err := services.DeleteContactSubmission(h.DB, id); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "submission")
		}
		return utils.ServerErrorResponse(c, err, "deleteContactSubmission")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Submission deleted successfully")
}
