package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenCookieName is the httpOnly cookie carrying the admin session JWT.
const TokenCookieName = "admin-token"

// TokenTTL is the admin session lifetime.
const TokenTTL = 24 * time.Hour

const resetTokenTTL = time.Hour

var (
	fallbackSecret     string
	fallbackSecretOnce sync.Once
)

// signingSecret returns the configured JWT secret, or a per-process random
// fallback so a missing JWT_SECRET degrades to sessions that do not survive
// restarts instead of a startup failure.
func signingSecret(cfg *config.Config) []byte {
	if cfg.JWTSecret != "" {
		return []byte(cfg.JWTSecret)
	}
	fallbackSecretOnce.Do(func() {
		fallbackSecret = uuid.New().String()
		log.Printf("JWT_SECRET not set; using a generated secret, admin sessions will not survive restarts")
	})
	return []byte(fallbackSecret)
}

// BootstrapAdmin ensures the single admin row exists. The row is only created
// when the table is empty, never overwritten.
func BootstrapAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := cfg.AdminPassword
	generated := false
	if password == "" {
		password = uuid.New().String()
		generated = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.Admin{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	if generated {
		log.Printf("Created admin account %q with generated password: %s", admin.Username, password)
	} else {
		log.Printf("Created admin account %q", admin.Username)
	}
	return nil
}

// Login validates credentials by username or email and returns the admin row
// with a signed session token.
func Login(db *gorm.DB, cfg *config.Config, identity, password string) (*models.Admin, string, error) {
	var admin models.Admin
	err := db.Where("username = ? OR email = ?", identity, identity).First(&admin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", fmt.Errorf("invalid credentials")
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := GenerateToken(cfg, &admin)
	if err != nil {
		return nil, "", err
	}
	return &admin, token, nil
}

// GenerateToken signs an HS256 session JWT for the admin.
func GenerateToken(cfg *config.Config, admin *models.Admin) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	})
	return token.SignedString(signingSecret(cfg))
}

// ValidateToken parses and validates a session JWT, returning its claims.
func ValidateToken(cfg *config.Config, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return signingSecret(cfg), nil
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("session is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}
	return claims, nil
}

// GetAdmin returns the admin row.
func GetAdmin(db *gorm.DB) (*models.Admin, error) {
	var admin models.Admin
	if err := db.First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("not found")
		}
		return nil, err
	}
	return &admin, nil
}

// UpdateAdminSettings overwrites only the provided credential fields. A new
// password is bcrypt-hashed before storage.
func UpdateAdminSettings(db *gorm.DB, username, email, password string) (*models.Admin, error) {
	admin, err := GetAdmin(db)
	if err != nil {
		return nil, err
	}

	if username != "" {
		admin.Username = username
	}
	if email != "" {
		admin.Email = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		admin.Password = string(hash)
	}

	if err := db.Save(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

// CreateResetToken stores a one-hour reset token on the admin row and
// returns it for delivery by mail.
func CreateResetToken(db *gorm.DB, identity string) (*models.Admin, string, error) {
	var admin models.Admin
	err := db.Where("username = ? OR email = ?", identity, identity).First(&admin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", fmt.Errorf("not found")
		}
		return nil, "", err
	}

	token := uuid.New().String()
	expiry := time.Now().Add(resetTokenTTL)
	admin.ResetToken = token
	admin.ResetTokenExpiry = &expiry

	if err := db.Save(&admin).Error; err != nil {
		return nil, "", err
	}
	return &admin, token, nil
}

// ResetPassword consumes a reset token and stores the new bcrypt-hashed
// password. Expired or unknown tokens are rejected.
func ResetPassword(db *gorm.DB, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return fmt.Errorf("invalid token")
	}

	var admin models.Admin
	err := db.Where("reset_token = ?", token).First(&admin).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("invalid token")
		}
		return err
	}

	if admin.ResetTokenExpiry == nil || time.Now().After(*admin.ResetTokenExpiry) {
		return fmt.Errorf("invalid token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin.Password = string(hash)
	admin.ResetToken = ""
	admin.ResetTokenExpiry = nil

	return db.Save(&admin).Error
}
