package handlers

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/nexus/internal/service"
)

type ContentLibraryHandler struct {
	s service.ContentLibraryService
}

func NewContentLibraryHandler(service service.ContentLibraryService) *ContentLibraryHandler {
	return &ContentLibraryHandler{s: service}
}

func (h *ContentLibraryHandler) List(c *fiber.Ctx) error {
	items, err := h.s.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, "Failed to fetch content library")
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *ContentLibraryHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		slog.Info(err.Error())
		return message(c, fiber.StatusBadRequest, "file is required")
	}

	f, err := header.Open()
	if err != nil {
		return handleError(c, err, "Failed to upload file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return handleError(c, err, "Failed to upload file")
	}

	var tags []string
	if raw := c.FormValue("tags"); raw != "" {
		tags = strings.Split(raw, ",")
	}

	item, err := h.s.Upload(c.UserContext(), GetUserID(c), header.Filename, data, tags)
	if err != nil {
		return handleError(c, err, "Failed to upload file")
	}
	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *ContentLibraryHandler) Delete(c *fiber.Ctx) error {
	if err := h.s.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return handleError(c, err, "Failed to delete content library item")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Content library item deleted successfully",
	})
}
