package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/nexus/internal/service"
	"github.com/maheshrc27/nexus/pkg/utils"
)

// UserKey is the fiber locals key holding the authenticated *models.User.
const UserKey = "user"

type AuthMiddleware struct {
	s service.AuthService
}

func NewAuthMiddleware(service service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{s: service}
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (m *AuthMiddleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access token required",
			})
		}

		user, err := m.s.Authenticate(c.UserContext(), token)
		switch {
		case errors.Is(err, utils.ErrInvalidToken):
			slog.Info("token validation failed", "err", err)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		case errors.Is(err, service.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
			})
		case err != nil:
			slog.Info(err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal server error",
			})
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}
