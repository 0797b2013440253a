package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/nexus/configs"
	"github.com/maheshrc27/nexus/internal/api"
	job "github.com/maheshrc27/nexus/internal/jobs"
	"github.com/maheshrc27/nexus/internal/repository"
	"github.com/maheshrc27/nexus/internal/service"
	"github.com/maheshrc27/nexus/pkg/utils"
	"github.com/robfig/cron"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nexus",
		Short:         "Social media dashboard API",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(config.LoadConfig())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(config.LoadConfig())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the Postgres schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			db, err := connectDB(cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := repository.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Println("Schema is up to date")
			return nil
		},
	})

	return root
}

func connectDB(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.PostgresURI == "" {
		return nil, errors.New("POSTGRES_URI is not set")
	}
	db, err := sqlx.Connect("postgres", cfg.PostgresURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func serve(cfg *config.Config) error {
	ctx := context.Background()

	if cfg.SecretKey == "" {
		key, err := utils.GenerateRandomKey(32)
		if err != nil {
			return err
		}
		cfg.SecretKey = key
		slog.Warn("SECRET_KEY is not set, using a random key; tokens will not survive a restart")
	}

	var (
		store repository.Storage
		db    *sqlx.DB
	)
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		var err error
		if db, err = connectDB(cfg); err != nil {
			return err
		}
		defer closeDB(db)
		if err := repository.Migrate(ctx, db); err != nil {
			return err
		}
		store = repository.NewPostgresStorage(db)
	case config.StorageMemory, "":
		store = repository.NewMemoryStorage()
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.SeedDemo {
		if err := repository.SeedDemo(ctx, store); err != nil {
			return err
		}
	}

	var cipher *utils.TokenCipher
	if cfg.TokenEncryptionKey != "" {
		var err error
		if cipher, err = utils.NewTokenCipher([]byte(cfg.TokenEncryptionKey)); err != nil {
			return err
		}
	}

	objects, err := service.NewObjectStorage(ctx, *cfg)
	if err != nil {
		return err
	}

	llm, err := service.NewGeminiLLM(cfg.AI)
	if err != nil {
		return err
	}
	var images service.ImageGenerator
	if cfg.AI.APIKey != "" {
		images = service.NewGeminiImageClient(cfg.AI)
	}

	app := api.NewApp(*cfg, api.NewServices(*cfg, store, objects, cipher, llm, images))

	c := cron.New()
	if err := job.NewTokenExpiryJob(store).Schedule(c, cfg.TokenSweepSchedule); err != nil {
		return fmt.Errorf("invalid TOKEN_SWEEP_SCHEDULE: %w", err)
	}
	c.Start()
	defer c.Stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s (storage: %s)", cfg.Port, cfg.StorageDriver)

	gracefulShutdown(app)
	return nil
}

func closeDB(db *sqlx.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Failed to shut down server: %v", err)
	}
	log.Println("Server shutdown complete.")
}
