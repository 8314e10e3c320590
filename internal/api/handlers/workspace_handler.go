package handlers

import (
	"github.com/blacklabelhq/scheduler-api/internal/service"
	"github.com/blacklabelhq/scheduler-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type WorkspaceHandler struct {
	s service.WorkspaceService
}

func NewWorkspaceHandler(service service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{s: service}
}

func (h *WorkspaceHandler) GetWorkspaceInfo(c *fiber.Ctx) error {
	userID := GetUserID(c)
	workspaceID := c.Query("workspace_id")

	if workspaceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "workspace_id is required",
		})
	}

	ws, err := h.s.Info(c.Context(), userID, workspaceID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(ws)
}

// ListWorkspaces returns the user's workspaces in join order; clients use
// the first as the default when no workspace_id is in the URL.
func (h *WorkspaceHandler) ListWorkspaces(c *fiber.Ctx) error {
	userID := GetUserID(c)

	workspaces, err := h.s.ListForUser(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to list workspaces",
		})
	}

	return c.JSON(workspaces)
}

func (h *WorkspaceHandler) CreateWorkspace(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var wc transfer.WorkspaceCreation
	if err := c.BodyParser(&wc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := validate.Struct(&wc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Workspace name is required",
		})
	}

	ws, err := h.s.Create(c.Context(), userID, wc.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to create workspace",
		})
	}

	return c.Status(fiber.StatusOK).JSON(ws)
}
