package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Uploads      string            `json:"uploads"`
	Mail         string            `json:"mail"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.Printf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// Check the upload directory is writable
	probe := filepath.Join(cfg.UploadDir, ".healthcheck")
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		result.Status = "unhealthy"
		result.Uploads = "error"
		result.Details["uploads_error"] = err.Error()
		log.Printf("Health check failed - upload dir: %v", err)
	} else if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		result.Status = "unhealthy"
		result.Uploads = "readonly"
		result.Details["uploads_error"] = err.Error()
		log.Printf("Health check failed - upload dir write: %v", err)
	} else {
		_ = os.Remove(probe)
		result.Uploads = "ok"
		result.Details["uploads_dir"] = cfg.UploadDir
	}

	// Check SMTP reachability; mail is optional so this never flips the
	// overall status, it is informational only.
	if cfg.SMTPHost == "" {
		result.Mail = "not_configured"
	} else if err := utils.PingSMTP(cfg.SMTPHost, cfg.SMTPPort); err != nil {
		result.Mail = "unreachable"
		result.Details["smtp_error"] = err.Error()
		log.Printf("Health check - SMTP unreachable: %v", err)
	} else {
		result.Mail = "ok"
		result.Details["smtp_host"] = cfg.SMTPHost
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
