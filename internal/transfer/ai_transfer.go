package transfer

type GenerateContentRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type HashtagsRequest struct {
	Content string `json:"content" validate:"required"`
}

type OptimizeRequest struct {
	Content  string `json:"content" validate:"required"`
	Platform string `json:"platform" validate:"platform"`
}

type SentimentRequest struct {
	Content string `json:"content" validate:"required"`
}

type ContentIdeasRequest struct {
	Topic    string `json:"topic" validate:"required"`
	Platform string `json:"platform" validate:"platform"`
}

type ImagePromptRequest struct {
	Description string `json:"description" validate:"required"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type Sentiment struct {
	Rating      float64  `json:"rating"`
	Confidence  float64  `json:"confidence"`
	Suggestions []string `json:"suggestions"`
}
