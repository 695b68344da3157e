package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	appLogger "alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := appLogger.New(cfg.Server.Env, cfg.Server.LogLevel)
	log.Info("✅ Config loaded successfully")

	// Audit log is optional; without it nothing touches a database.
	auditRepo := repositories.NewNoopAuditRepository()
	if cfg.Audit.Enabled {
		db, err := config.InitDatabase(cfg, log)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		auditRepo = repositories.NewAuditRepository(db)
		log.Info("✅ Audit repository initialized")
	}

	// Initialize LLM client
	llmClient, err := services.NewLLMClient(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM client: %v", err)
	}
	log.WithField("provider", llmClient.Provider()).
		WithField("model", llmClient.Model()).
		Info("✅ LLM client initialized successfully")

	analyzer := services.NewResumeAnalyzer(
		services.NewPDFParserService(),
		llmClient,
		cfg.Analysis.RejectEmptyText,
		log,
	)
	log.Info("✅ Services initialized successfully")

	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, auditRepo, log)
	healthHandler := handlers.NewHealthHandler(analyzer)
	log.Info("✅ Handlers initialized")

	// Create Fiber app. No write timeout: the upstream call may take as long
	// as the provider needs.
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    int(cfg.Server.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.RegisterRoutes(app, analyzeHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
