package handlers

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/services"
	"github.com/ledgerline/sitecms/internal/types"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// BlogHandler handles blog post routes.
type BlogHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

type blogUpdateBody struct {
	ID        types.FlexUint64       `json:"id"`
	Title     string                 `json:"title"`
	Excerpt   string                 `json:"excerpt"`
	Content   string                 `json:"content"`
	Author    string                 `json:"author"`
	Image     string                 `json:"image"`
	Tags      types.FlexList[string] `json:"tags"`
	Published *bool                  `json:"published"`
}

// Get handles GET /api/blogs with optional ?id or ?slug. Without a filter it
// returns the full list, drafts included; the public site filters on the
// published flag client-side.
// @Summary Get blog posts
// @Tags Blogs
// @Produce json
// @Param id query int false "Blog id"
// @Param slug query string false "Blog slug"
// @Success 200 {array} models.Blog
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /blogs [get]
func (h *BlogHandler) Get(c *fiber.Ctx) error {
	if id, ok := queryID(c); ok {
		blog, err := services.GetBlogByID(h.DB, id)
		if err != nil {
			if err.Error() == "not found" {
				return utils.NotFoundResponse(c, "blog")
			}
			return utils.ServerErrorResponse(c, err, "getBlog")
		}
		return c.Status(fiber.StatusOK).JSON(blog)
	}

	if s := c.Query("slug"); s != "" {
		blog, err := services.GetBlogBySlug(h.DB, s)
		if err != nil {
			if err.Error() == "not found" {
				return utils.NotFoundResponse(c, "blog")
			}
			return utils.ServerErrorResponse(c, err, "getBlogBySlug")
		}
		return c.Status(fiber.StatusOK).JSON(blog)
	}

	blogs, err := services.ListBlogs(h.DB)
	if err != nil {
		return utils.ServerErrorResponse(c, err, "listBlogs")
	}
	return c.Status(fiber.StatusOK).JSON(blogs)
}

// Create handles POST /api/blogs. Multipart form: scalar fields, tags as a
// JSON array string or comma-separated list, an optional image file, and
// published as "true"/"false".
// @Summary Create a blog post
// @Tags Blogs
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Post title"
// @Param excerpt formData string false "Short excerpt"
// @Param content formData string false "Post body"
// @Param author formData string false "Author name"
// @Param tags formData string false "Tags as JSON array or comma-separated"
// @Param published formData string false "Publish flag"
// @Param image formData file false "Cover image"
// @Success 201 {object} models.Blog
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /blogs [post]
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	title := c.FormValue("title")
	if title == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "title is required")
	}

	image, err := saveImage(c, h.Cfg, "blogs")
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createBlog upload")
	}

	tags, err := marshalColumn(parseTags(c.FormValue("tags")))
	if err != nil {
		return utils.ServerErrorResponse(c, err, "createBlog tags")
	}

	blog := models.Blog{
		Title:     title,
		Slug:      c.FormValue("slug"),
		Excerpt:   c.FormValue("excerpt"),
		Content:   c.FormValue("content"),
		Author:    c.FormValue("author"),
		Image:     image,
		Tags:      tags,
		Published: c.FormValue("published") == "true",
	}
	if err := services.CreateBlog(h.DB, &blog); err != nil {
		if err.Error() == "slug exists" {
			return utils.ErrorResponse(c, fiber.StatusConflict, "A blog with this slug already exists")
		}
		return utils.ServerErrorResponse(c, err, "createBlog")
	}
	return utils.CreatedResponse(c, blog)
}

// Update handles PATCH /api/blogs with a JSON body. Omitted fields are left
// untouched; published is the only field that can be set back to false.
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	var body blogUpdateBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "invalid request body")
	}
	if body.ID.Uint64() == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}

	patch := models.Blog{
		Title:   body.Title,
		Excerpt: body.Excerpt,
		Content: body.Content,
		Author:  body.Author,
		Image:   body.Image,
	}
	if body.Tags != nil {
		col, err := marshalColumn([]string(body.Tags))
		if err != nil {
			return utils.ServerErrorResponse(c, err, "updateBlog tags")
		}
		patch.Tags = col
	}

	blog, err := services.UpdateBlog(h.DB, body.ID.Uint64(), &patch, body.Published)
	if err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "blog")
		}
		return utils.ServerErrorResponse(c, err, "updateBlog")
	}
	return c.Status(fiber.StatusOK).JSON(blog)
}

// Delete handles DELETE /api/blogs with {id} in the JSON body.
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	id, ok := bodyID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "id is required")
	}
	if err := services.DeleteBlog(h.DB, id); err != nil {
		if err.Error() == "not found" {
			return utils.NotFoundResponse(c, "blog")
		}
		return utils.ServerErrorResponse(c, err, "deleteBlog")
	}
	return utils.MessageResponse(c, fiber.StatusOK, "Blog deleted successfully")
}

// parseTags accepts a JSON array string or a comma-separated list.
func parseTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err == nil {
		return tags
	}
	parts := strings.Split(raw, ",")
	tags = make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
