// server.go
//
// Content service and admin API for the Ledgerline Advisors marketing site.
// Copyright (c) 2026 Ledgerline Advisors <dev@ledgerline.co>
//
// This file is part of sitecms.
// sitecms is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// sitecms is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with sitecms.
// If not, see <https://www.gnu.org/licenses/>.

package server

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/handlers"
	"github.com/ledgerline/sitecms/internal/middleware"
	"github.com/ledgerline/sitecms/internal/models"
	"github.com/ledgerline/sitecms/internal/types"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// New builds the Fiber application with all middleware and routes wired to
// the given database. Tests drive the same app in-process via app.Test.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("sitecms")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded images
	app.Static(utils.WebPathPrefix, cfg.UploadDir)

	// Health probe
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}
	app.Get("/health", healthHandler.Get)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	admin := middleware.AuthAdmin(cfg)

	// Hero banners, one handler per page variant. The home variant takes
	// multipart forms, about and blog take JSON with data-URL images.
	heroHome := &handlers.HeroHandler{DB: db, Cfg: cfg, Variant: models.HeroVariantHome, Resource: "hero"}
	api.Get("/hero", heroHome.Get)
	api.Post("/hero", admin, heroHome.CreateMultipart)
	api.Put("/hero", admin, heroHome.UpdateMultipart)
	api.Delete("/hero", admin, heroHome.Delete)

	heroAbout := &handlers.HeroHandler{DB: db, Cfg: cfg, Variant: models.HeroVariantAbout, Resource: "heroabout"}
	api.Get("/heroabout", heroAbout.Get)
	api.Post("/heroabout", admin, heroAbout.CreateJSON)
	api.Put("/heroabout", admin, heroAbout.UpdateJSON)
	api.Delete("/heroabout", admin, heroAbout.Delete)

	heroBlog := &handlers.HeroHandler{DB: db, Cfg: cfg, Variant: models.HeroVariantBlog, Resource: "heroblog"}
	api.Get("/heroblog", heroBlog.Get)
	api.Post("/heroblog", admin, heroBlog.CreateJSON)
	api.Put("/heroblog", admin, heroBlog.UpdateJSON)
	api.Delete("/heroblog", admin, heroBlog.Delete)

	// Service catalog. The categories routes register before /service so
	// they are not shadowed.
	categoryHandler := &handlers.CategoryHandler{DB: db}
	api.Get("/service/categories", categoryHandler.List)
	api.Post("/service/categories", admin, categoryHandler.Create)
	api.Put("/service/categories", admin, categoryHandler.Update)
	api.Delete("/service/categories", admin, categoryHandler.Delete)

	serviceHandler := &handlers.ServiceHandler{DB: db, Cfg: cfg}
	api.Get("/service", serviceHandler.Get)
	api.Post("/service", admin, serviceHandler.Create)
	api.Patch("/service", admin, serviceHandler.Update)
	api.Delete("/service", admin, serviceHandler.Delete)
	api.Get("/services", serviceHandler.List)

	// Case studies
	caseStudyHandler := &handlers.CaseStudyHandler{DB: db}
	api.Get("/caseStudy", caseStudyHandler.Get)
	api.Post("/caseStudy", admin, caseStudyHandler.Create)
	api.Put("/caseStudy", admin, caseStudyHandler.Update)
	api.Delete("/caseStudy", admin, caseStudyHandler.Delete)

	// Blog posts
	blogHandler := &handlers.BlogHandler{DB: db, Cfg: cfg}
	api.Get("/blogs", blogHandler.Get)
	api.Post("/blogs", admin, blogHandler.Create)
	api.Patch("/blogs", admin, blogHandler.Update)
	api.Delete("/blogs", admin, blogHandler.Delete)

	// Team tabs
	teamHandler := &handlers.TeamHandler{DB: db}
	api.Get("/team", teamHandler.List)
	api.Post("/team", admin, teamHandler.Create)
	api.Put("/team", admin, teamHandler.Update)
	api.Delete("/team", admin, teamHandler.Delete)

	// Testimonials
	testimonialHandler := &handlers.TestimonialHandler{DB: db, Cfg: cfg}
	api.Get("/testimonial", testimonialHandler.List)
	api.Post("/testimonial", admin, testimonialHandler.Create)
	api.Put("/testimonial", admin, testimonialHandler.Update)
	api.Delete("/testimonial", admin, testimonialHandler.Delete)

	// Trusted company logos. The route keeps its historical spelling.
	companyHandler := &handlers.CompanyHandler{DB: db, Cfg: cfg}
	api.Get("/tructedCompany", companyHandler.List)
	api.Post("/tructedCompany", admin, companyHandler.Create)
	api.Delete("/tructedCompany", admin, companyHandler.Delete)

	// Industries served
	industryHandler := &handlers.IndustryHandler{DB: db, Cfg: cfg}
	api.Get("/industries", industryHandler.List)
	api.Post("/industries", admin, industryHandler.Create)
	api.Put("/industries", admin, industryHandler.Update)
	api.Delete("/industries", admin, industryHandler.Delete)

	// Footer block
	footerHandler := &handlers.FooterHandler{DB: db}
	api.Get("/footer", footerHandler.Get)
	api.Post("/footer", admin, footerHandler.Create)
	api.Put("/footer", admin, footerHandler.Update)

	// Contact form, the only public write
	contactHandler := &handlers.ContactHandler{DB: db, Cfg: cfg}
	api.Post("/contact", contactHandler.Submit)
	api.Get("/contact", admin, contactHandler.List)
	api.Patch("/contact", admin, contactHandler.UpdateStatus)
	api.Delete("/contact", admin, contactHandler.Delete)

	// Admin session
	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg}
	api.Post("/auth", authHandler.Login)
	api.Get("/auth", authHandler.Session)
	api.Delete("/auth", authHandler.Logout)

	// Admin account settings and password reset
	settingsHandler := &handlers.SettingsHandler{DB: db, Cfg: cfg}
	api.Get("/admin/settings", admin, settingsHandler.Get)
	api.Put("/admin/settings", admin, settingsHandler.Update)
	api.Post("/admin/forgot-password", settingsHandler.ForgotPassword)
	api.Post("/admin/reset-password", settingsHandler.ResetPassword)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resource not found",
		})
	})

	return app
}

// errorHandler keeps every error in the {error: message} shape the admin UI
// branches on.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
