package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const siteverifyURL = "https://www.google.com/recaptcha/api/siteverify"

// VerifyRecaptcha checks a client token against the siteverify endpoint.
// Callers treat failures as best-effort: verification problems are logged
// and swallowed, never surfaced to the submitter.
func VerifyRecaptcha(secret, token, remoteIP string) error {
	client := &http.Client{Timeout: 5 * time.Second}

	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	resp, err := client.PostForm(siteverifyURL, form)
	if err != nil {
		return fmt.Errorf("siteverify request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("siteverify read failed: %w", err)
	}

	var result struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("siteverify decode failed: %v, body: %s", err, string(body))
	}

	if !result.Success {
		return fmt.Errorf("siteverify rejected token: %v", result.ErrorCodes)
	}
	return nil
}
