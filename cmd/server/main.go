package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadilmartias/ielts-writer/internal/config"
	"github.com/fadilmartias/ielts-writer/internal/domain/fiber/handler"
	"github.com/fadilmartias/ielts-writer/internal/middleware"
	"github.com/fadilmartias/ielts-writer/internal/model"
	"github.com/fadilmartias/ielts-writer/internal/repository"
	"github.com/fadilmartias/ielts-writer/internal/repository/memory"
	pgrepo "github.com/fadilmartias/ielts-writer/internal/repository/postgres"
	"github.com/fadilmartias/ielts-writer/internal/service"
	"github.com/fadilmartias/ielts-writer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		fmt.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if appConfig.Env != "production" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	essayRepo, promptRepo, err := buildRepositories(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not initialize storage")
	}

	scorer, err := buildScorer(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not initialize scorer")
	}

	essayUC := usecase.NewEssayUsecase(essayRepo, promptRepo, logger)
	validationUC := usecase.NewValidationUsecase(scorer, logger)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	api := app.Group("/api")
	handler.NewEssayHandler(essayUC).RegisterRoutes(api)
	handler.NewPromptHandler(essayUC).RegisterRoutes(api)
	handler.NewValidateHandler(validationUC, logger).RegisterRoutes(api)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info().Msg("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	logger.Info().Str("port", appConfig.Port).Msg("server running")
	if err := app.Listen(appConfig.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// buildRepositories picks the storage backing. Memory is the default: it is
// volatile on purpose, so a restart discards essays and reseeds the prompt
// catalog.
func buildRepositories(ctx context.Context, logger zerolog.Logger) (repository.EssayRepository, repository.PromptRepository, error) {
	dbConfig := config.LoadDBConfig()

	switch dbConfig.Driver {
	case "memory":
		store := memory.NewStore()
		if err := store.Seed(ctx, model.SeedPrompts()); err != nil {
			return nil, nil, err
		}
		logger.Info().Msg("using in-memory storage")
		return store.Essays(), store.Prompts(), nil
	case "postgres":
		db, err := connectDB(dbConfig)
		if err != nil {
			return nil, nil, err
		}
		promptRepo := pgrepo.NewPromptRepository(db)
		if err := promptRepo.SeedIfEmpty(ctx, model.SeedPrompts()); err != nil {
			return nil, nil, err
		}
		logger.Info().Msg("using postgres storage")
		return pgrepo.NewEssayRepository(db), promptRepo, nil
	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", dbConfig.Driver)
	}
}

func buildScorer(ctx context.Context, logger zerolog.Logger) (service.Scorer, error) {
	switch backend := config.LoadScorerConfig().Backend; backend {
	case "openai":
		return service.NewOpenAIScorer(config.LoadOpenAIConfig(), logger)
	case "gemini":
		return service.NewGeminiScorer(ctx, config.LoadGeminiConfig(), logger)
	default:
		return nil, fmt.Errorf("unknown SCORER_BACKEND %q", backend)
	}
}

func connectDB(dbConfig *config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	pgDB.SetMaxIdleConns(5)
	pgDB.SetMaxOpenConns(10)
	pgDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&model.Essay{}, &model.Prompt{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}
