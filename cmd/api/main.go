package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studysupport/internal/adapter"
	"studysupport/internal/adapter/embedding"
	"studysupport/internal/adapter/forms"
	"studysupport/internal/adapter/llm"
	"studysupport/internal/adapter/videosearch"
	"studysupport/internal/cache"
	"studysupport/internal/config"
	"studysupport/internal/domain"
	"studysupport/internal/extract"
	"studysupport/internal/handler"
	"studysupport/internal/logger"
	"studysupport/internal/middleware"
	"studysupport/internal/pdfexport"
	"studysupport/internal/service"
	"studysupport/internal/vectorstore"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Initialize Redis client and adapters
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	sessionRepo := adapter.NewRedisSessionRepository(cacheAdapter, cfg.Session.TTL)
	answerKeyRepo := adapter.NewRedisAnswerKeyRepository(cacheAdapter, cfg.Session.TTL)

	// Initialize Embedding Service
	var embeddingService domain.EmbeddingService
	switch cfg.Embedding.Source {
	case "googleai":
		appLogger.Info("Initializing Google AI Embedding Service", zap.String("model", cfg.Google.EmbeddingModel))
		embeddingService, err = embedding.NewGoogleAIEmbeddingService(ctx, cfg.Google.APIKey, cfg.Google.EmbeddingModel, cacheAdapter, cfg.Embedding.CacheTTL)
		if err != nil {
			appLogger.Fatal("Failed to create Google AI Embedding Service", zap.Error(err))
		}
	case "openai":
		appLogger.Info("Initializing OpenAI Embedding Service", zap.String("model", cfg.Embedding.OpenAI.Model))
		embeddingService, err = embedding.NewOpenAIEmbeddingService(cfg.Embedding.OpenAI.APIKey, cfg.Embedding.OpenAI.Model)
		if err != nil {
			appLogger.Fatal("Failed to create OpenAI Embedding Service", zap.Error(err))
		}
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported embedding source: %s. Please check embedding.source in config.", cfg.Embedding.Source))
	}

	// Initialize text generator
	generator, err := llm.NewGoogleAIGenerator(ctx, cfg.Google.APIKey, cfg.Google.Model, cfg.Quiz.RequestTimeout)
	if err != nil {
		appLogger.Fatal("Failed to create text generator", zap.Error(err))
	}

	// Initialize retrieval store
	store := vectorstore.NewStore(cfg.Index.Dir, embeddingService, cfg.Index.ChunkSize, cfg.Index.ChunkOverlap)

	// Initialize forms exporter and video searcher
	formsExporter, err := forms.NewGoogleFormsExporter(ctx, cfg.Google)
	if err != nil {
		appLogger.Fatal("Failed to create Google Forms exporter", zap.Error(err))
	}
	videoSearcher, err := videosearch.NewYouTubeSearcher(ctx, cfg.YouTube.APIKey)
	if err != nil {
		appLogger.Fatal("Failed to create YouTube searcher", zap.Error(err))
	}

	// Initialize services
	documentService := service.NewDocumentService(extract.NewExtractor(), store, sessionRepo, cfg.Index.ChunkSize, cfg.Index.ChunkOverlap)
	askService := service.NewAskService(sessionRepo, store, generator, cfg.Quiz.AskContextChunks)
	quizService := service.NewQuizService(sessionRepo, store, generator, pdfexport.NewRenderer(cfg.Export.LogoPath), cfg.Quiz)
	formService := service.NewFormService(sessionRepo, store, generator, formsExporter, answerKeyRepo, cfg.Quiz)
	videoService := service.NewVideoService(sessionRepo, videoSearcher, cfg.YouTube)

	// Initialize handlers
	documentHandler := handler.NewDocumentHandler(documentService)
	askHandler := handler.NewAskHandler(askService)
	quizHandler := handler.NewQuizHandler(quizService)
	formHandler := handler.NewFormHandler(formService)
	videoHandler := handler.NewVideoHandler(videoService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    20 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	apiGroup.Post("/documents", documentHandler.Upload)

	sessionGroup := apiGroup.Group("/sessions/:id")
	sessionGroup.Post("/ask", askHandler.Ask)
	sessionGroup.Get("/history", askHandler.History)
	sessionGroup.Post("/quiz", quizHandler.Generate)
	sessionGroup.Post("/quiz/answers", quizHandler.SubmitAnswer)
	sessionGroup.Get("/quiz/export", quizHandler.ExportPDF)
	sessionGroup.Post("/form", formHandler.Create)
	sessionGroup.Get("/videos", videoHandler.Recommend)

	formGroup := apiGroup.Group("/forms/:formID")
	formGroup.Get("/responses", formHandler.Responses)
	formGroup.Get("/responses/csv", formHandler.ResponsesCSV)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
