package handlers

import (
	"errors"

	"github.com/blacklabelhq/scheduler-api/internal/composer"
	"github.com/blacklabelhq/scheduler-api/internal/service"
	"github.com/blacklabelhq/scheduler-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	s   service.PostService
	cal service.CalendarService
}

func NewPostHandler(service service.PostService, calendar service.CalendarService) *PostHandler {
	return &PostHandler{s: service, cal: calendar}
}

func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var pc transfer.PostCreation
	if err := c.BodyParser(&pc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	post, err := h.s.Submit(c.Context(), userID, &pc)
	if err != nil {
		return postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post scheduled successfully",
		"post":    post,
		"refresh": h.s.RefreshSeq(pc.WorkspaceID),
	})
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	userID := GetUserID(c)
	workspaceID := c.Query("workspace_id")

	posts, err := h.s.List(c.Context(), userID, workspaceID)
	if err != nil {
		return postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts":   posts,
		"refresh": h.s.RefreshSeq(workspaceID),
	})
}

func (h *PostHandler) RemovePost(c *fiber.Ctx) error {
	userID := GetUserID(c)

	var pr transfer.PostRemoval
	if err := c.BodyParser(&pr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := validate.Struct(&pr); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "post_id is required",
		})
	}

	if err := h.s.Remove(c.Context(), userID, pr.PostID); err != nil {
		return postError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *PostHandler) Calendar(c *fiber.Ctx) error {
	userID := GetUserID(c)
	workspaceID := c.Query("workspace_id")
	month := c.Query("month")

	cells, anchor, err := h.cal.MonthGrid(c.Context(), userID, workspaceID, month)
	if err != nil {
		return postError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"month":   anchor.Format("2006-01"),
		"cells":   cells,
		"refresh": h.s.RefreshSeq(workspaceID),
	})
}

// Preview computes the caption counters and preview label the composer
// shows while typing.
func (h *PostHandler) Preview(c *fiber.Ctx) error {
	var pp transfer.PostPreview
	if err := c.BodyParser(&pp); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	platforms, err := composer.NormalizePlatforms(pp.Platforms)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	resp := fiber.Map{
		"metrics":   composer.ComputeMetrics(pp.Caption),
		"platforms": platforms,
	}
	if primary, ok := composer.NewSelection(platforms...).Primary(); ok {
		resp["primary_platform"] = primary
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *PostHandler) ListTemplates(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"templates": composer.QuickTemplates,
	})
}

// Refresh reports the workspace's refresh counter so views can poll for
// staleness instead of re-fetching blindly.
func (h *PostHandler) Refresh(c *fiber.Ctx) error {
	workspaceID := c.Query("workspace_id")
	if workspaceID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "workspace_id is required",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"refresh": h.s.RefreshSeq(workspaceID),
	})
}

func postError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, composer.ErrEmptyCaption),
		errors.Is(err, composer.ErrNoPlatformSelected),
		errors.Is(err, composer.ErrNoActiveWorkspace),
		errors.Is(err, composer.ErrUnknownPlatform):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, service.ErrSubmissionInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var pe *service.PersistenceError
	if errors.As(err, &pe) {
		// The store's message, passed through as-is.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": pe.Error(),
		})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
