package handlers

import (
	"io"
	"log/slog"

	"github.com/blacklabelhq/scheduler-api/internal/service"
	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	r2 *service.R2Service
	ws service.WorkspaceService
}

func NewUploadHandler(r2 *service.R2Service, ws service.WorkspaceService) *UploadHandler {
	return &UploadHandler{r2: r2, ws: ws}
}

// UploadImage stores an image for later attachment. It runs before
// submit; the composer keeps only the returned path.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	userID := GetUserID(c)
	workspaceID := c.FormValue("workspace_id")

	if _, err := h.ws.Info(c.Context(), userID, workspaceID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file selected",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read file",
		})
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		slog.Info(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to read file",
		})
	}

	path, err := h.r2.UploadImage(c.Context(), workspaceID, fileBytes)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"path": path,
	})
}
