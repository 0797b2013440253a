package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	config "github.com/maheshrc27/nexus/configs"
	"github.com/maheshrc27/nexus/internal/models"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var ErrAINotConfigured = errors.New("generative API key is not configured")

const (
	fallbackContent     = "Unable to generate content at this time."
	fallbackImagePrompt = "Create a professional, engaging social media image"
	maxHashtags         = 10
	maxIdeas            = 5
)

var fallbackHashtags = []string{"#socialmedia", "#content", "#marketing"}

const (
	contentSystemPrompt = `You are a professional social media content creator.
Generate engaging, platform-appropriate content that drives engagement and maintains brand voice.
Keep posts concise, use relevant hashtags, and include call-to-action elements when appropriate.
Avoid controversial topics and ensure content is professional yet engaging.`

	hashtagSystemPrompt = `You are a social media hashtag expert.
Analyze the content and generate 5-10 relevant, trending hashtags that would increase visibility.
Focus on a mix of popular and niche hashtags. Avoid overused or spam hashtags.
Return only the hashtags as a JSON array of strings, including the # symbol.`

	sentimentSystemPrompt = `You are a content sentiment analysis expert.
Analyze the sentiment and engagement potential of social media content.
Provide a rating from 1-5 stars, confidence score 0-1, and improvement suggestions.
Respond with JSON in this format:
{"rating": number, "confidence": number, "suggestions": string[]}`

	ideasSystemPrompt = `You are a creative social media strategist.
Generate 5 engaging content ideas for the given topic and platform.
Each idea should be specific, actionable, and platform-appropriate.
Return as a JSON array of strings.`

	imagePromptSystemPrompt = `You are an expert at creating detailed image generation prompts.
Create a specific, detailed prompt for generating social media images that would complement the given content.
Focus on visual elements, style, composition, and mood that would enhance engagement.`
)

var platformGuidelines = map[string]string{
	models.PlatformInstagram: "Optimize for Instagram: Use engaging visuals language, include relevant hashtags, keep under 2200 characters, and encourage engagement through questions or calls-to-action.",
	models.PlatformFacebook:  "Optimize for Facebook: Create conversation-starting content, use a friendly tone, include questions to encourage comments, and keep it engaging but professional.",
	models.PlatformTwitter:   "Optimize for Twitter/X: Keep under 280 characters, use trending hashtags, make it shareable and conversation-worthy, include relevant mentions when appropriate.",
	models.PlatformLinkedIn:  "Optimize for LinkedIn: Professional tone, industry-relevant content, thought leadership approach, encourage professional discussion and networking.",
	models.PlatformTikTok:    "Optimize for TikTok: Trendy, engaging, youth-oriented language, include popular hashtags, focus on entertainment value and viral potential.",
}

type AIService interface {
	GenerateContent(ctx context.Context, userID, prompt string) (string, error)
	Hashtags(ctx context.Context, userID, content string) ([]string, error)
	Optimize(ctx context.Context, userID, content, platform string) (string, error)
	Sentiment(ctx context.Context, userID, content string) (*transfer.Sentiment, error)
	Ideas(ctx context.Context, userID, topic, platform string) ([]string, error)
	ImagePrompt(ctx context.Context, userID, description string) (string, error)
	// GenerateImage renders prompt, stores the image and returns its URL.
	GenerateImage(ctx context.Context, userID, prompt string) (string, error)
	History(ctx context.Context, userID string) ([]*models.AiGeneration, error)
}

type aiService struct {
	cfg    config.AI
	llm    llms.Model
	images ImageGenerator
	store  ObjectStorage
	gens   repository.AiGenerationRepository
}

// NewGeminiLLM returns a chat model bound to Gemini's OpenAI-compatible
// endpoint, or nil when no API key is configured.
func NewGeminiLLM(cfg config.AI) (llms.Model, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	llm, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL+"/openai"),
	)
	if err != nil {
		slog.Error("failed to initialise generative model", "err", err)
		return nil, err
	}
	return llm, nil
}

// NewAIService wires the generative helpers. llm and images may be nil, in
// which case text tasks return their fallbacks and image generation fails.
func NewAIService(cfg config.AI, llm llms.Model, images ImageGenerator, store ObjectStorage, gens repository.AiGenerationRepository) AIService {
	return &aiService{cfg: cfg, llm: llm, images: images, store: store, gens: gens}
}

func (s *aiService) complete(ctx context.Context, model, system, user string, jsonMode bool) (string, error) {
	if s.llm == nil {
		return "", ErrAINotConfigured
	}
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}
	opts := []llms.CallOption{llms.WithModel(model)}
	if jsonMode {
		opts = append(opts, llms.WithJSONMode())
	}

	resp, err := s.llm.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", &ExternalServiceError{Service: "gemini", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ExternalServiceError{Service: "gemini", Err: errors.New("empty response from model")}
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

// decodeJSON parses a model reply, tolerating a surrounding markdown fence.
func decodeJSON(raw string, v interface{}) error {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(raw, "```")
	}
	if raw == "" {
		return errors.New("empty response from model")
	}
	return json.Unmarshal([]byte(raw), v)
}

func (s *aiService) record(ctx context.Context, userID, kind, prompt, output string, meta models.Metadata) {
	if s.gens == nil {
		return
	}
	if _, err := s.gens.CreateAiGeneration(ctx, &models.AiGeneration{
		UserID:           userID,
		GenerationType:   kind,
		Prompt:           prompt,
		GeneratedContent: output,
		Metadata:         meta,
	}); err != nil {
		slog.Info(err.Error())
	}
}

func meta(task, model string, fallback bool) models.Metadata {
	return models.Metadata{"task": task, "model": model, "fallback": fallback}
}

func (s *aiService) GenerateContent(ctx context.Context, userID, prompt string) (string, error) {
	text, err := s.complete(ctx, s.cfg.TextModel, contentSystemPrompt, prompt, false)
	fallback := err != nil || text == ""
	if fallback {
		if err != nil {
			slog.Info(err.Error())
		}
		text = fallbackContent
	}
	s.record(ctx, userID, models.GenerationContent, prompt, text, meta("content", s.cfg.TextModel, fallback))
	return text, nil
}

func (s *aiService) Hashtags(ctx context.Context, userID, content string) ([]string, error) {
	tags, err := s.hashtags(ctx, content)
	fallback := err != nil
	if fallback {
		slog.Info("failed to generate hashtags", "err", err)
		tags = append([]string{}, fallbackHashtags...)
	}
	s.record(ctx, userID, models.GenerationHashtags, content, strings.Join(tags, " "), meta("hashtags", s.cfg.JSONModel, fallback))
	return tags, nil
}

func (s *aiService) hashtags(ctx context.Context, content string) ([]string, error) {
	raw, err := s.complete(ctx, s.cfg.JSONModel, hashtagSystemPrompt, "Generate hashtags for this content: "+content, true)
	if err != nil {
		return nil, err
	}
	var parsed []string
	if err := decodeJSON(raw, &parsed); err != nil {
		return nil, err
	}
	tags := []string{}
	for _, t := range parsed {
		if strings.HasPrefix(t, "#") {
			tags = append(tags, t)
		}
		if len(tags) == maxHashtags {
			break
		}
	}
	return tags, nil
}

func (s *aiService) Optimize(ctx context.Context, userID, content, platform string) (string, error) {
	guideline, ok := platformGuidelines[platform]
	if !ok {
		guideline = platformGuidelines[models.PlatformInstagram]
	}
	system := "You are a social media optimization expert. " + guideline
	user := fmt.Sprintf("Optimize this content for %s: %s", platform, content)

	text, err := s.complete(ctx, s.cfg.TextModel, system, user, false)
	fallback := err != nil || text == ""
	if fallback {
		if err != nil {
			slog.Info(err.Error())
		}
		text = content
	}
	m := meta("optimize", s.cfg.TextModel, fallback)
	m["platform"] = platform
	s.record(ctx, userID, models.GenerationCaption, content, text, m)
	return text, nil
}

func fallbackSentiment() *transfer.Sentiment {
	return &transfer.Sentiment{
		Rating:      3,
		Confidence:  0.5,
		Suggestions: []string{"Unable to analyze content sentiment at this time"},
	}
}

func (s *aiService) Sentiment(ctx context.Context, userID, content string) (*transfer.Sentiment, error) {
	result, err := s.sentiment(ctx, content)
	if err != nil {
		slog.Info("failed to analyze sentiment", "err", err)
		return fallbackSentiment(), nil
	}
	return result, nil
}

func (s *aiService) sentiment(ctx context.Context, content string) (*transfer.Sentiment, error) {
	raw, err := s.complete(ctx, s.cfg.JSONModel, sentimentSystemPrompt, "Analyze this content: "+content, true)
	if err != nil {
		return nil, err
	}
	var out transfer.Sentiment
	if err := decodeJSON(raw, &out); err != nil {
		return nil, err
	}
	out.Rating = clamp(out.Rating, 1, 5)
	out.Confidence = clamp(out.Confidence, 0, 1)
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	return &out, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func fallbackIdeas(topic string) []string {
	return []string{
		"Share insights about " + topic,
		"Create a poll about " + topic,
		"Post tips related to " + topic,
	}
}

func (s *aiService) Ideas(ctx context.Context, userID, topic, platform string) ([]string, error) {
	ideas, err := s.ideas(ctx, topic, platform)
	fallback := err != nil || len(ideas) == 0
	if fallback {
		if err != nil {
			slog.Info("failed to generate content ideas", "err", err)
		}
		ideas = fallbackIdeas(topic)
	}
	m := meta("ideas", s.cfg.TextModel, fallback)
	m["platform"] = platform
	s.record(ctx, userID, models.GenerationContent, topic, strings.Join(ideas, "\n"), m)
	return ideas, nil
}

func (s *aiService) ideas(ctx context.Context, topic, platform string) ([]string, error) {
	user := fmt.Sprintf("Generate content ideas for topic %q on %s", topic, platform)
	raw, err := s.complete(ctx, s.cfg.TextModel, ideasSystemPrompt, user, true)
	if err != nil {
		return nil, err
	}
	var ideas []string
	if err := decodeJSON(raw, &ideas); err != nil {
		return nil, err
	}
	if len(ideas) > maxIdeas {
		ideas = ideas[:maxIdeas]
	}
	return ideas, nil
}

func (s *aiService) ImagePrompt(ctx context.Context, userID, description string) (string, error) {
	user := "Create an image generation prompt for this content: " + description
	text, err := s.complete(ctx, s.cfg.TextModel, imagePromptSystemPrompt, user, false)
	fallback := err != nil || text == ""
	if fallback {
		if err != nil {
			slog.Info(err.Error())
		}
		text = fallbackImagePrompt
	}
	s.record(ctx, userID, models.GenerationContent, description, text, meta("image_prompt", s.cfg.TextModel, fallback))
	return text, nil
}

var imageExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

func (s *aiService) GenerateImage(ctx context.Context, userID, prompt string) (string, error) {
	if s.images == nil || s.cfg.APIKey == "" {
		return "", &ExternalServiceError{Service: "gemini", Err: ErrAINotConfigured}
	}

	data, mimeType, err := s.images.GenerateImage(ctx, prompt)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	ext, ok := imageExtensions[mimeType]
	if !ok {
		ext, mimeType = "png", "image/png"
	}
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("generated-%d-%s.%s", time.Now().Unix(), id, ext)

	url, err := s.store.Upload(ctx, key, data, mimeType)
	if err != nil {
		return "", err
	}

	m := meta("image", s.cfg.ImageModel, false)
	m["imageUrl"] = url
	s.record(ctx, userID, models.GenerationImage, prompt, url, m)
	return url, nil
}

func (s *aiService) History(ctx context.Context, userID string) ([]*models.AiGeneration, error) {
	return s.gens.ListAiGenerations(ctx, userID)
}
