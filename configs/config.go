package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != ""
}

type AI struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	JSONModel  string
	ImageModel string
	Timeout    time.Duration
}

type Config struct {
	Port               string
	StorageDriver      string
	PostgresURI        string
	SecretKey          string
	TokenEncryptionKey string
	SeedDemo           bool
	FrontendURL        string
	PublicURL          string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
	R2                 R2
	UploadDir          string
	AI                 AI
	BodyLimitMB        int
	TokenSweepSchedule string
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// LoadConfig reads configuration from the process environment. A .env file,
// when present, is expected to be loaded by the caller beforehand.
func LoadConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("SEED_DEMO", false)
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("PUBLIC_URL", "http://localhost:3000")
	v.SetDefault("UPLOAD_DIR", "./uploads")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("GEMINI_TEXT_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_JSON_MODEL", "gemini-2.5-pro")
	v.SetDefault("GEMINI_IMAGE_MODEL", "gemini-2.0-flash-preview-image-generation")
	v.SetDefault("AI_TIMEOUT", "60s")
	v.SetDefault("BODY_LIMIT_MB", 100)
	v.SetDefault("TOKEN_SWEEP_SCHEDULE", "@every 10m")

	return &Config{
		Port:               v.GetString("PORT"),
		StorageDriver:      strings.ToLower(v.GetString("STORAGE_DRIVER")),
		PostgresURI:        v.GetString("POSTGRES_URI"),
		SecretKey:          v.GetString("SECRET_KEY"),
		TokenEncryptionKey: v.GetString("TOKEN_ENCRYPTION_KEY"),
		SeedDemo:           v.GetBool("SEED_DEMO"),
		FrontendURL:        v.GetString("FRONTEND_URL"),
		PublicURL:          strings.TrimRight(v.GetString("PUBLIC_URL"), "/"),
		GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  v.GetString("GOOGLE_REDIRECT_URI"),
		R2: R2{
			AccountID:  v.GetString("R2_ACCOUNT_ID"),
			AccessKey:  v.GetString("R2_ACCESS_KEY"),
			SecretKey:  v.GetString("R2_SECRET_KEY"),
			BucketName: v.GetString("R2_BUCKET_NAME"),
			PublicURL:  strings.TrimRight(v.GetString("R2_PUBLIC_URL"), "/"),
		},
		UploadDir: v.GetString("UPLOAD_DIR"),
		AI: AI{
			APIKey:     v.GetString("GEMINI_API_KEY"),
			BaseURL:    strings.TrimRight(v.GetString("GEMINI_BASE_URL"), "/"),
			TextModel:  v.GetString("GEMINI_TEXT_MODEL"),
			JSONModel:  v.GetString("GEMINI_JSON_MODEL"),
			ImageModel: v.GetString("GEMINI_IMAGE_MODEL"),
			Timeout:    v.GetDuration("AI_TIMEOUT"),
		},
		BodyLimitMB:        v.GetInt("BODY_LIMIT_MB"),
		TokenSweepSchedule: v.GetString("TOKEN_SWEEP_SCHEDULE"),
	}
}
