package handlers

import (
	"path/filepath"
	"strings"

	"cyber-learning-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// SetupMediaRoutes serves the image upload used for activity and post imagery.
func SetupMediaRoutes(app *fiber.App) {
	app.Post("/api/media/upload", func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return badRequest(c, `multipart field "image" is required`)
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !allowedImageExts[ext] {
			return badRequest(c, "unsupported image type: "+ext)
		}

		key := "images/" + uuid.NewString() + ext
		url, err := utils.UploadImage(fileHeader, key)
		if err != nil {
			return respondError(c, err, "failed to store image")
		}
		return c.JSON(fiber.Map{"url": url})
	})
}
