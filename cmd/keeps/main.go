package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"keeps/internal/api"
	"keeps/internal/api/handlers"
	"keeps/internal/repository"
	"keeps/internal/service"
	"keeps/migrations"
	"keeps/pkg/auth"
	"keeps/pkg/config"
	"keeps/pkg/logger"
	"keeps/pkg/postgres"
	"keeps/pkg/storage"

	"go.uber.org/zap"
)

// @title Keeps API
// @version 1.0
// @description Insurance policy portfolio service with coverage gap analysis

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting keeps service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, migrations.FS, appLogger); err != nil {
		appLogger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	objects, err := storage.NewMinioStore(ctx, &cfg.Storage, logger.Named("storage"))
	if err != nil {
		appLogger.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	policyRepo := repository.NewPolicyRepository(db, appLogger)
	profileRepo := repository.NewProfileRepository(db, appLogger)
	docRepo := repository.NewDocumentRepository(db, appLogger)
	claimRepo := repository.NewClaimRepository(db, appLogger)
	premiumRepo := repository.NewPremiumRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	llmService, err := service.NewLLMService(ctx, &cfg.GigaChat, logger.Named("llm"))
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer func() {
		if err := llmService.Close(); err != nil {
			logger.Warn("Failed to close LLM client", zap.Error(err))
		}
	}()

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	policyService := service.NewPolicyService(policyRepo, appLogger)
	profileService := service.NewProfileService(profileRepo, appLogger)
	gapService := service.NewGapService(policyRepo, profileService, appLogger)
	docService := service.NewDocumentService(
		docRepo,
		policyRepo,
		objects,
		service.NewPDFTextExtractor(logger.Named("pdf")),
		llmService,
		cfg.Extraction,
		appLogger,
	)
	chatService := service.NewChatService(policyRepo, profileService, llmService, appLogger)
	claimService := service.NewClaimService(claimRepo, policyRepo, appLogger)
	premiumService := service.NewPremiumService(premiumRepo, policyRepo, appLogger)

	app := api.SetupRouter(api.Handlers{
		Auth:     handlers.NewAuthHandler(authService, appLogger),
		Policy:   handlers.NewPolicyHandler(policyService, appLogger),
		Profile:  handlers.NewProfileHandler(profileService, appLogger),
		Gap:      handlers.NewGapHandler(gapService, appLogger),
		Document: handlers.NewDocumentHandler(docService, appLogger),
		Chat:     handlers.NewChatHandler(chatService, appLogger),
		Claim:    handlers.NewClaimHandler(claimService, appLogger),
		Premium:  handlers.NewPremiumHandler(premiumService, appLogger),
	}, jwtManager, cfg, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
}
