package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"briefd/internal/cache"
	"briefd/internal/config"
	"briefd/internal/handler"
	"briefd/internal/middleware"
	"briefd/internal/repository/postgres"
	"briefd/internal/service/ai"
	briefsvc "briefd/internal/service/brief"
	"briefd/internal/service/extract"
	"briefd/internal/storage"
)

// maxLogFiles caps how many timestamped log files LOG_DIR retains.
const maxLogFiles = 10

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, maxLogFiles)
		if err != nil {
			log.Fatalf("Failed to create log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	briefRepo := postgres.NewBriefRepository(repoConfig)
	sectionRepo := postgres.NewSectionRepository(repoConfig)
	documentRepo := postgres.NewDocumentRepository(repoConfig)
	versionRepo := postgres.NewVersionRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Cache store - degrade to no-op when redis is not configured or
	// not reachable; reads fall through to postgres either way
	var store cache.Store = cache.NoopStore{}
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisStore(cfg.RedisURL, logger)
		if err != nil {
			logger.Warn("redis unavailable, caching disabled", "error", err)
		} else {
			defer redisStore.Close()
			store = redisStore
			logger.Info("cache connected", "addr", cfg.RedisURL)
		}
	}
	invalidator := cache.NewInvalidator(store)

	// File storage for uploads
	fileStore, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to create file store: %v", err)
	}

	// AI providers: anthropic when a key is configured, with the fake
	// provider always registered for lorem models
	providers := []ai.Provider{ai.NewLoremProvider()}
	if cfg.AnthropicAPIKey != "" {
		anthropicProvider, err := ai.NewAnthropicProvider(cfg.AnthropicAPIKey)
		if err != nil {
			log.Fatalf("Failed to create anthropic provider: %v", err)
		}
		providers = append(providers, anthropicProvider)
	} else {
		logger.Warn("ANTHROPIC_API_KEY not set, AI calls served by the fake provider")
	}
	registry := ai.NewRegistry(providers...)

	model := cfg.DefaultModel
	if cfg.AnthropicAPIKey == "" && !ai.IsLoremModel(model) {
		model = "lorem"
	}
	aiClient := ai.NewClient(registry, model, logger)

	// Extraction service
	extractor := extract.NewService(logger)

	// Section template
	template, err := briefsvc.LoadSectionTemplate()
	if err != nil {
		log.Fatalf("Failed to load section template: %v", err)
	}

	// Domain services
	briefService := briefsvc.NewBriefService(briefRepo, sectionRepo, versionRepo, txManager, store, invalidator, template, logger)
	sectionService := briefsvc.NewSectionService(sectionRepo, documentRepo, aiClient, invalidator, logger)
	documentService := briefsvc.NewDocumentService(documentRepo, briefRepo, fileStore, extractor, aiClient, invalidator, logger)

	logger.Info("services initialized")

	// Handlers
	briefHandler := handler.NewBriefHandler(briefService, sectionService, logger)
	sectionHandler := handler.NewSectionHandler(sectionService, logger)
	documentHandler := handler.NewDocumentHandler(documentService, logger)
	aiHandler := handler.NewAIHandler(sectionService, aiClient, logger)
	healthHandler := handler.NewHealthHandler(pool)

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Brief routes
	mux.HandleFunc("POST /api/briefs", briefHandler.CreateBrief)
	mux.HandleFunc("GET /api/briefs", briefHandler.ListBriefs)
	mux.HandleFunc("GET /api/briefs/{id}", briefHandler.GetBrief)
	mux.HandleFunc("PUT /api/briefs/{id}", briefHandler.UpdateBrief)
	mux.HandleFunc("DELETE /api/briefs/{id}", briefHandler.DeleteBrief)

	// Version routes
	mux.HandleFunc("POST /api/briefs/{id}/versions", briefHandler.Snapshot)
	mux.HandleFunc("GET /api/briefs/{id}/versions", briefHandler.ListVersions)

	// Export
	mux.HandleFunc("GET /api/briefs/{id}/export", briefHandler.Export)

	// Section routes
	mux.HandleFunc("GET /api/briefs/{id}/sections", sectionHandler.ListSections)
	mux.HandleFunc("GET /api/sections/{id}", sectionHandler.GetSection)
	mux.HandleFunc("PUT /api/sections/{id}", sectionHandler.UpdateSection)
	mux.HandleFunc("POST /api/sections/{id}/accept", sectionHandler.AcceptAIGenerated)
	mux.HandleFunc("DELETE /api/sections/{id}", sectionHandler.DeleteSection)

	// Document routes
	mux.HandleFunc("POST /api/documents/upload", documentHandler.Upload)
	mux.HandleFunc("GET /api/briefs/{id}/documents", documentHandler.ListDocuments)
	mux.HandleFunc("GET /api/documents/{id}", documentHandler.GetDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", documentHandler.DeleteDocument)
	mux.HandleFunc("POST /api/documents/{id}/analyze", documentHandler.Analyze)

	// AI routes
	mux.HandleFunc("POST /api/ai/auto-populate/{sectionID}", aiHandler.AutoPopulate)
	mux.HandleFunc("POST /api/ai/generate/{sectionID}", aiHandler.Generate)
	mux.HandleFunc("POST /api/ai/suggestions", aiHandler.Suggestions)

	// Build middleware chain
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)

	// CORS - must wrap the full chain to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
