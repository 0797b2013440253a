package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/nexus/internal/service"
	"github.com/maheshrc27/nexus/internal/transfer"
)

type SocialProfileHandler struct {
	s service.SocialProfileService
}

func NewSocialProfileHandler(service service.SocialProfileService) *SocialProfileHandler {
	return &SocialProfileHandler{s: service}
}

func (h *SocialProfileHandler) List(c *fiber.Ctx) error {
	profiles, err := h.s.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, "Failed to fetch social profiles")
	}
	return c.Status(fiber.StatusOK).JSON(profiles)
}

func (h *SocialProfileHandler) Create(c *fiber.Ctx) error {
	var req transfer.CreateSocialProfileRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to create social profile")
	}

	profile, err := h.s.Create(c.UserContext(), GetUserID(c), req)
	if err != nil {
		return handleError(c, err, "Failed to create social profile")
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *SocialProfileHandler) Update(c *fiber.Ctx) error {
	var req transfer.UpdateSocialProfileRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to update social profile")
	}

	profile, err := h.s.Update(c.UserContext(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return handleError(c, err, "Failed to update social profile")
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *SocialProfileHandler) Delete(c *fiber.Ctx) error {
	if err := h.s.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return handleError(c, err, "Failed to delete social profile")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Social profile deleted successfully",
	})
}
