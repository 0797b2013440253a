package api

import (
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/maheshrc27/nexus/configs"
	"github.com/maheshrc27/nexus/internal/api/handlers"
	"github.com/maheshrc27/nexus/internal/api/middleware"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/service"
	"github.com/maheshrc27/nexus/pkg/utils"
	"github.com/tmc/langchaingo/llms"
)

type Services struct {
	Auth           service.AuthService
	SocialProfiles service.SocialProfileService
	Posts          service.PostService
	ContentLibrary service.ContentLibraryService
	Analytics      service.AnalyticsService
	Dashboard      service.DashboardService
	AI             service.AIService
}

// NewApp builds the fiber application with every route mounted.
func NewApp(cfg config.Config, svc Services) *fiber.App {
	bodyLimit := cfg.BodyLimitMB
	if bodyLimit <= 0 {
		bodyLimit = 100
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    bodyLimit * 1024 * 1024,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal server error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}
			slog.Info(err.Error())
			return c.Status(code).JSON(fiber.Map{"message": msg})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	if !cfg.R2.Enabled() && cfg.UploadDir != "" {
		app.Static("/uploads", cfg.UploadDir)
	}

	authMiddleware := middleware.NewAuthMiddleware(svc.Auth)
	requireAuth := authMiddleware.AuthMiddleware()

	api := app.Group("/api")

	auth := handlers.NewAuthHandler(cfg, svc.Auth)
	api.Post("/auth/register", auth.Register)
	api.Post("/auth/login", auth.Login)
	api.Get("/auth/google", auth.GoogleLogin)
	api.Get("/auth/google/callback", auth.GoogleCallback)
	api.Get("/auth/me", requireAuth, auth.Me)
	api.Delete("/auth/me", requireAuth, auth.DeleteMe)

	profiles := handlers.NewSocialProfileHandler(svc.SocialProfiles)
	api.Get("/social-profiles", requireAuth, profiles.List)
	api.Post("/social-profiles", requireAuth, profiles.Create)
	api.Put("/social-profiles/:id", requireAuth, profiles.Update)
	api.Delete("/social-profiles/:id", requireAuth, profiles.Delete)

	posts := handlers.NewPostHandler(svc.Posts)
	api.Get("/posts", requireAuth, posts.List)
	api.Get("/posts/recent", requireAuth, posts.Recent)
	api.Get("/posts/scheduled", requireAuth, posts.Scheduled)
	api.Post("/posts", requireAuth, posts.Create)
	api.Put("/posts/:id", requireAuth, posts.Update)
	api.Delete("/posts/:id", requireAuth, posts.Delete)

	library := handlers.NewContentLibraryHandler(svc.ContentLibrary)
	api.Get("/content-library", requireAuth, library.List)
	api.Post("/content-library", requireAuth, library.Upload)
	api.Delete("/content-library/:id", requireAuth, library.Delete)

	analytics := handlers.NewAnalyticsHandler(svc.Analytics, svc.Dashboard)
	api.Get("/analytics", requireAuth, analytics.List)
	api.Post("/analytics", requireAuth, analytics.Create)
	api.Get("/analytics/platform/:platform", requireAuth, analytics.ByPlatform)
	api.Get("/analytics/post/:postId", requireAuth, analytics.ForPost)
	api.Get("/dashboard/stats", requireAuth, analytics.DashboardStats)

	ai := handlers.NewAIHandler(svc.AI)
	aiGroup := api.Group("/ai", requireAuth)
	aiGroup.Post("/content", ai.Content)
	aiGroup.Post("/hashtags", ai.Hashtags)
	aiGroup.Post("/optimize", ai.Optimize)
	aiGroup.Post("/sentiment", ai.Sentiment)
	aiGroup.Post("/ideas", ai.Ideas)
	aiGroup.Post("/image-prompt", ai.ImagePrompt)
	aiGroup.Post("/image", ai.Image)
	aiGroup.Get("/generations", ai.Generations)

	return app
}

// NewServices builds every service over a single storage backend.
func NewServices(cfg config.Config, store repository.Storage, objects service.ObjectStorage, cipher *utils.TokenCipher, llm llms.Model, images service.ImageGenerator) Services {
	return Services{
		Auth:           service.NewAuthService(cfg, store),
		SocialProfiles: service.NewSocialProfileService(store, cipher),
		Posts:          service.NewPostService(store),
		ContentLibrary: service.NewContentLibraryService(store, objects),
		Analytics:      service.NewAnalyticsService(store, store),
		Dashboard:      service.NewDashboardService(store),
		AI:             service.NewAIService(cfg.AI, llm, images, objects, store),
	}
}
