package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/ledgerline/sitecms/internal/config"
	"github.com/ledgerline/sitecms/internal/models"
)

// MailConfigured reports whether an SMTP relay and recipient are configured.
// When false, notification mail is a logged no-op.
func MailConfigured(cfg *config.Config) bool {
	return cfg.SMTPHost != "" && cfg.ContactEmail != ""
}

// SendContactNotification emails the contact inbox about a new submission.
// Callers treat failures as best-effort: log and swallow, never fail the
// primary write.
func SendContactNotification(cfg *config.Config, submission *models.ContactSubmission) error {
	if !MailConfigured(cfg) {
		log.Printf("SMTP not configured, skipping contact notification for submission %d", submission.ID)
		return nil
	}

	subject := fmt.Sprintf("New contact submission from %s %s", submission.FirstName, submission.LastName)
	body := fmt.Sprintf(
		"Name: %s %s\r\nEmail: %s\r\nPhone: %s\r\n\r\n%s\r\n",
		submission.FirstName, submission.LastName,
		submission.Email, submission.Phone,
		submission.Message,
	)

	return send(cfg, cfg.ContactEmail, subject, body)
}

// SendPasswordResetMail delivers a reset token to the admin's email address.
func SendPasswordResetMail(cfg *config.Config, admin *models.Admin, token string) error {
	if cfg.SMTPHost == "" || admin.Email == "" {
		log.Printf("SMTP not configured or admin has no email, skipping reset mail")
		return nil
	}

	subject := "Password reset request"
	body := fmt.Sprintf("A password reset was requested for %q.\r\n\r\nReset token: %s\r\n\r\nThe token expires in one hour.\r\n", admin.Username, token)

	return send(cfg, admin.Email, subject, body)
}

func send(cfg *config.Config, to, subject, body string) error {
	from := cfg.SMTPUser
	if from == "" {
		from = "no-reply@localhost"
	}

	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	addr := cfg.SMTPHost + ":" + cfg.SMTPPort

	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
