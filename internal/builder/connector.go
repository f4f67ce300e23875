package builder

import (
	"context"
	"fmt"

	"github.com/theoyjy/IntelliMap/internal/config"
	"github.com/theoyjy/IntelliMap/internal/integration/llm"
	"github.com/theoyjy/IntelliMap/internal/usecase/conversation"
	"go.uber.org/zap"
)

// setupModelConnector picks the model backend from config
func setupModelConnector(ctx context.Context, cfg *config.Config, logger *zap.Logger) (conversation.ModelConnector, error) {
	if cfg.EnableMocks {
		logger.Info("Using mock connector for the model")
		return llm.NewMockConnector(logger), nil
	}

	switch cfg.LLMConnectorCfg.Backend {
	case config.LLMBackendSDK:
		connector, err := llm.NewGeminiConnector(ctx, cfg.LLMConnectorCfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create genai connector: %w", err)
		}
		logger.Info("Using genai SDK connector for the model",
			zap.String("model", cfg.LLMConnectorCfg.Model),
		)
		return connector, nil
	default:
		logger.Info("Using REST connector for the model",
			zap.String("model", cfg.LLMConnectorCfg.Model),
			zap.String("service_url", cfg.LLMConnectorCfg.Url),
		)
		return llm.NewConnector(cfg.LLMConnectorCfg, logger), nil
	}
}
