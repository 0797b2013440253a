package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/nexus/internal/service"
	"github.com/maheshrc27/nexus/internal/transfer"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
	d service.DashboardService
}

func NewAnalyticsHandler(analytics service.AnalyticsService, dashboard service.DashboardService) *AnalyticsHandler {
	return &AnalyticsHandler{s: analytics, d: dashboard}
}

func (h *AnalyticsHandler) List(c *fiber.Ctx) error {
	rows, err := h.s.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, "Failed to fetch analytics")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

func (h *AnalyticsHandler) ByPlatform(c *fiber.Ctx) error {
	rows, err := h.s.ByPlatform(c.UserContext(), GetUserID(c), c.Params("platform"))
	if err != nil {
		return handleError(c, err, "Failed to fetch platform analytics")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

func (h *AnalyticsHandler) ForPost(c *fiber.Ctx) error {
	rows, err := h.s.ForPost(c.UserContext(), GetUserID(c), c.Params("postId"))
	if err != nil {
		return handleError(c, err, "Failed to fetch post analytics")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}

func (h *AnalyticsHandler) Create(c *fiber.Ctx) error {
	var req transfer.CreateAnalyticsRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to record analytics")
	}

	row, err := h.s.Record(c.UserContext(), GetUserID(c), req)
	if err != nil {
		return handleError(c, err, "Failed to record analytics")
	}
	return c.Status(fiber.StatusOK).JSON(row)
}

func (h *AnalyticsHandler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.d.Stats(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, "Failed to fetch dashboard stats")
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}
