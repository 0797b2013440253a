package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	config "github.com/maheshrc27/nexus/configs"
)

var ErrNoImageGenerated = errors.New("no image data found in response")

// ImageGenerator renders a prompt into image bytes.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (data []byte, mimeType string, err error)
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		ResponseModalities []string `json:"responseModalities"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type geminiImageClient struct {
	client *resty.Client
	model  string
}

// NewGeminiImageClient calls the generateContent REST endpoint of an
// image-capable Gemini model.
func NewGeminiImageClient(cfg config.AI) ImageGenerator {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("x-goog-api-key", cfg.APIKey).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &geminiImageClient{client: client, model: cfg.ImageModel}
}

func (g *geminiImageClient) GenerateImage(ctx context.Context, prompt string) ([]byte, string, error) {
	var body geminiRequest
	body.Contents = []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}}
	body.GenerationConfig.ResponseModalities = []string{"TEXT", "IMAGE"}

	var out geminiResponse
	var apiErr geminiError
	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("model", g.model).
		SetBody(body).
		SetResult(&out).
		SetError(&apiErr).
		Post("/models/{model}:generateContent")
	if err != nil {
		return nil, "", &ExternalServiceError{Service: "gemini", Err: err}
	}
	if resp.IsError() {
		return nil, "", &ExternalServiceError{
			Service: "gemini",
			Err:     fmt.Errorf("status %d: %s", resp.StatusCode(), apiErr.Error.Message),
		}
	}

	if len(out.Candidates) == 0 {
		return nil, "", &ExternalServiceError{Service: "gemini", Err: errors.New("no image generated")}
	}
	for _, part := range out.Candidates[0].Content.Parts {
		if part.Text != "" {
			slog.Info("image generation response", "text", part.Text)
			continue
		}
		if part.InlineData != nil && part.InlineData.Data != "" {
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, "", &ExternalServiceError{Service: "gemini", Err: err}
			}
			return data, part.InlineData.MimeType, nil
		}
	}
	return nil, "", &ExternalServiceError{Service: "gemini", Err: ErrNoImageGenerated}
}
