package utils

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WebPathPrefix is where the upload directory is mounted by the server.
const WebPathPrefix = "/uploads"

// SaveUpload writes an uploaded file under baseDir/subdir with a
// collision-resistant timestamp-prefixed name and returns the web-accessible
// path. No size limit or content-type allowlist is enforced server-side; the
// admin file pickers restrict to image/*, which is advisory only.
func SaveUpload(fh *multipart.FileHeader, baseDir, subdir string) (string, error) {
	dir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return path.Join(WebPathPrefix, subdir, name), nil
}

// SaveDataURL decodes a base64 data URL (JSON-body admin forms send images
// this way) into baseDir/subdir under a timestamp-random name and returns the
// web-accessible path.
func SaveDataURL(dataURL, baseDir, subdir string) (string, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", fmt.Errorf("not a data URL")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", fmt.Errorf("malformed data URL")
	}
	if !strings.HasSuffix(meta, ";base64") {
		return "", fmt.Errorf("unsupported data URL encoding")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode data URL: %w", err)
	}

	ext := "bin"
	mediaType := strings.TrimSuffix(meta, ";base64")
	if _, subtype, ok := strings.Cut(mediaType, "/"); ok && subtype != "" {
		ext = subtype
	}

	dir := filepath.Join(baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return path.Join(WebPathPrefix, subdir, name), nil
}

// sanitizeFilename strips path separators and whitespace from an original
// filename so it is safe to use as a disk name component.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
