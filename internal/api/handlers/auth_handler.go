package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/nexus/configs"
	"github.com/maheshrc27/nexus/internal/service"
	"github.com/maheshrc27/nexus/internal/transfer"
)

type AuthHandler struct {
	s   service.AuthService
	cfg config.Config
}

func NewAuthHandler(cfg config.Config, service service.AuthService) *AuthHandler {
	return &AuthHandler{s: service, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req transfer.RegisterRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Internal server error")
	}

	resp, err := h.s.Register(c.UserContext(), req)
	if err != nil {
		return handleError(c, err, "Internal server error")
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req transfer.LoginRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Internal server error")
	}

	resp, err := h.s.Login(c.UserContext(), req)
	if err != nil {
		return handleError(c, err, "Internal server error")
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": service.PublicUser(GetUser(c)),
	})
}

func (h *AuthHandler) DeleteMe(c *fiber.Ctx) error {
	if err := h.s.DeleteAccount(c.UserContext(), GetUserID(c)); err != nil {
		return handleError(c, err, "Failed to delete account")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Account deleted successfully",
	})
}

func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	authURL, err := h.s.GoogleAuthURL()
	if err != nil {
		return handleError(c, err, "Failed to start Google login")
	}
	return c.Redirect(authURL, fiber.StatusTemporaryRedirect)
}

func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	token, err := h.s.GoogleCallback(c.UserContext(), c.Query("code"), c.Query("state"))
	if err != nil {
		return handleError(c, err, "Google login failed")
	}

	target := h.cfg.FrontendURL + "/auth/callback?token=" + url.QueryEscape(token)
	return c.Redirect(target, fiber.StatusTemporaryRedirect)
}
