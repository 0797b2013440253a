package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/nexus/internal/api/middleware"
	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/service"
	"github.com/maheshrc27/nexus/internal/transfer"
)

func GetUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(middleware.UserKey).(*models.User)
	return user
}

func GetUserID(c *fiber.Ctx) string {
	if user := GetUser(c); user != nil {
		return user.ID
	}
	return ""
}

func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

// bind parses the JSON body into req and validates it.
func bind(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		slog.Info(err.Error())
		return &service.ValidationError{Message: "Invalid request body"}
	}
	if err := transfer.Validate(req); err != nil {
		return &service.ValidationError{Message: err.Error()}
	}
	return nil
}

// handleError writes the response for err. fallback is the message used for
// unexpected failures so internal details never reach the client.
func handleError(c *fiber.Ctx, err error, fallback string) error {
	var validation *service.ValidationError
	var external *service.ExternalServiceError

	switch {
	case errors.As(err, &validation):
		return message(c, fiber.StatusBadRequest, validation.Message)
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrUnsupportedFileType),
		errors.Is(err, service.ErrInvalidOAuthState):
		return message(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return message(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrContentNotFound):
		return message(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrOAuthNotConfigured):
		return message(c, fiber.StatusServiceUnavailable, err.Error())
	case errors.As(err, &external):
		slog.Info(err.Error())
		return message(c, fiber.StatusBadGateway, fallback)
	}

	slog.Info(err.Error())
	return message(c, fiber.StatusInternalServerError, fallback)
}
