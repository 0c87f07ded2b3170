package utils

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends an error response in the {error: message} shape the
// admin UI and public components branch on.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// NotFoundResponse sends a 404 with the "<resource> not found" message shape.
func NotFoundResponse(c *fiber.Ctx, resource string) error {
	return ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf("%s not found", resource))
}

// ServerErrorResponse logs the full error server-side and answers with a
// generic message. Handlers never leak internals to the client.
func ServerErrorResponse(c *fiber.Ctx, err error, context string) error {
	log.Printf("%s: %v", context, err)
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}

// MessageResponse sends a {message: ...} confirmation (deletes, logout).
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// CreatedResponse sends the created document with a 201.
func CreatedResponse(c *fiber.Ctx, doc interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Error string `json:"error"`
}

// MessageResponseStruct defines the schema for confirmation responses
type MessageResponseStruct struct {
	Message string `json:"message"`
}
