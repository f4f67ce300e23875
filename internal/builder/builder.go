package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/theoyjy/IntelliMap/internal/api"
	profileapi "github.com/theoyjy/IntelliMap/internal/api/profile"
	"github.com/theoyjy/IntelliMap/internal/config"
	"github.com/theoyjy/IntelliMap/internal/pkg/logger"
	"github.com/theoyjy/IntelliMap/internal/pkg/validator"
	"github.com/theoyjy/IntelliMap/internal/repository"
	"github.com/theoyjy/IntelliMap/internal/usecase/conversation"
	"go.uber.org/zap"
)

// Headroom on top of the model timeout for reading the body and writing the reply.
const serverTimeoutSlack = 30 * time.Second

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize conversation store
	conversations := repository.NewConversationCache(
		cfg.SessionCfg.TTL,
		log,
		repository.WithSweepInterval(cfg.SessionCfg.SweepInterval),
	)
	if err := conversations.Start(); err != nil {
		return nil, fmt.Errorf("start conversation sweep: %w", err)
	}
	log.Info("Conversation store initialized")

	// Initialize model connector (with mock support)
	modelConnector, err := setupModelConnector(ctx, cfg, log)
	if err != nil {
		_ = conversations.Close()
		return nil, fmt.Errorf("setup model connector: %w", err)
	}

	// Initialize use cases
	conversationUC := conversation.NewUsecase(
		conversations,
		modelConnector,
		cfg.Questionnaire,
		log,
	)
	log.Info("Use cases initialized", zap.Int("questionnaire_size", len(cfg.Questionnaire)))

	// Setup API handlers
	profileHandler := profileapi.NewHandler(conversationUC, validator.NewValidator())
	log.Info("API handlers initialized")

	// Setup router
	requestTimeout := cfg.LLMConnectorCfg.RequestTimeout + serverTimeoutSlack
	router := api.SetupRouter(api.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: requestTimeout,
	}, profileHandler, log)
	log.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: requestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:        server,
		conversations: conversations,
		logger:        log,
	}, nil
}
