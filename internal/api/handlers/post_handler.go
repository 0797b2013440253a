package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/service"
	"github.com/maheshrc27/nexus/internal/transfer"
)

type PostHandler struct {
	s service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{s: service}
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.s.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, "Failed to fetch posts")
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", repository.DefaultRecentLimit)
	posts, err := h.s.Recent(c.UserContext(), GetUserID(c), limit)
	if err != nil {
		return handleError(c, err, "Failed to fetch recent posts")
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) Scheduled(c *fiber.Ctx) error {
	posts, err := h.s.Scheduled(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, "Failed to fetch scheduled posts")
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	var req transfer.CreatePostRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to create post")
	}

	post, err := h.s.Create(c.UserContext(), GetUserID(c), req)
	if err != nil {
		return handleError(c, err, "Failed to create post")
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	var req transfer.UpdatePostRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to update post")
	}

	post, err := h.s.Update(c.UserContext(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return handleError(c, err, "Failed to update post")
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	if err := h.s.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return handleError(c, err, "Failed to delete post")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}
