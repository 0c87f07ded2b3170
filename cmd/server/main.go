package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/database"
	"github.com/ledgerline/sitecms/internal/server"
	"github.com/ledgerline/sitecms/internal/services"

	_ "github.com/ledgerline/sitecms/docs/api" // Swagger docs
)

// @title Ledgerline Site CMS API
// @version 1.0.0
// @description Content service and admin API for the Ledgerline Advisors marketing site
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email dev@ledgerline.co

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name admin-token

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Ensure the admin account exists
	if err := services.BootstrapAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to bootstrap admin account: %v", err)
	}

	// Seed fallback content into empty tables
	if err := services.SeedDefaults(db); err != nil {
		log.Fatalf("Failed to seed default content: %v", err)
	}

	app := server.New(cfg, db)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
