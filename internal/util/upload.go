package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hafizhramadhan/company-profile-api/internal/config"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveImage stores the uploaded image from the given multipart field
// under the configured upload directory and returns its
// server-relative URL path. The caller decides whether a missing file
// is an error.
func SaveImage(c *fiber.Ctx, fieldName string) (string, error) {
	cfg := config.LoadUploadConfig()

	file, err := c.FormFile(fieldName)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s file is required", fieldName))
	}

	if file.Size > cfg.MaxSize {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s file size is too large (max 5MB)", fieldName))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unsupported %s file type", fieldName))
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "cannot prepare upload directory")
	}

	name := uuid.New().String() + ext
	savePath := filepath.Join(cfg.Dir, name)
	if err := c.SaveFile(file, savePath); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("cannot save %s file", fieldName))
	}

	return cfg.URLPrefix + "/" + name, nil
}

// AbsoluteURL turns a server-relative path into a URL clients can
// load directly, using the scheme and host of the current request.
// Paths that are already absolute pass through untouched.
func AbsoluteURL(c *fiber.Ctx, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.BaseURL() + path
}
