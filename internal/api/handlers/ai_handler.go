package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/nexus/internal/service"
	"github.com/maheshrc27/nexus/internal/transfer"
)

type AIHandler struct {
	s service.AIService
}

func NewAIHandler(service service.AIService) *AIHandler {
	return &AIHandler{s: service}
}

func (h *AIHandler) Content(c *fiber.Ctx) error {
	var req transfer.GenerateContentRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to generate content")
	}
	content, err := h.s.GenerateContent(c.UserContext(), GetUserID(c), req.Prompt)
	if err != nil {
		return handleError(c, err, "Failed to generate content")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"content": content})
}

func (h *AIHandler) Hashtags(c *fiber.Ctx) error {
	var req transfer.HashtagsRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to generate hashtags")
	}
	tags, err := h.s.Hashtags(c.UserContext(), GetUserID(c), req.Content)
	if err != nil {
		return handleError(c, err, "Failed to generate hashtags")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"hashtags": tags})
}

func (h *AIHandler) Optimize(c *fiber.Ctx) error {
	var req transfer.OptimizeRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to optimize content")
	}
	content, err := h.s.Optimize(c.UserContext(), GetUserID(c), req.Content, req.Platform)
	if err != nil {
		return handleError(c, err, "Failed to optimize content")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"content": content})
}

func (h *AIHandler) Sentiment(c *fiber.Ctx) error {
	var req transfer.SentimentRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to analyze sentiment")
	}
	result, err := h.s.Sentiment(c.UserContext(), GetUserID(c), req.Content)
	if err != nil {
		return handleError(c, err, "Failed to analyze sentiment")
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AIHandler) Ideas(c *fiber.Ctx) error {
	var req transfer.ContentIdeasRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to generate content ideas")
	}
	ideas, err := h.s.Ideas(c.UserContext(), GetUserID(c), req.Topic, req.Platform)
	if err != nil {
		return handleError(c, err, "Failed to generate content ideas")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ideas": ideas})
}

func (h *AIHandler) ImagePrompt(c *fiber.Ctx) error {
	var req transfer.ImagePromptRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to generate image prompt")
	}
	prompt, err := h.s.ImagePrompt(c.UserContext(), GetUserID(c), req.Description)
	if err != nil {
		return handleError(c, err, "Failed to generate image prompt")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"prompt": prompt})
}

func (h *AIHandler) Image(c *fiber.Ctx) error {
	var req transfer.GenerateImageRequest
	if err := bind(c, &req); err != nil {
		return handleError(c, err, "Failed to generate image")
	}
	url, err := h.s.GenerateImage(c.UserContext(), GetUserID(c), req.Prompt)
	if err != nil {
		return handleError(c, err, "Failed to generate image")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"imageUrl": url})
}

func (h *AIHandler) Generations(c *fiber.Ctx) error {
	rows, err := h.s.History(c.UserContext(), GetUserID(c))
	if err != nil {
		return handleError(c, err, "Failed to fetch generations")
	}
	return c.Status(fiber.StatusOK).JSON(rows)
}
