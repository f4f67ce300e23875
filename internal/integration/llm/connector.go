package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/theoyjy/IntelliMap/internal/config"
	"github.com/theoyjy/IntelliMap/internal/entity"
	"github.com/theoyjy/IntelliMap/internal/integration/common"
	pkghttp "github.com/theoyjy/IntelliMap/pkg/http"
	"go.uber.org/zap"
)

const userAgent = "IntelliMap/1.0"

// Connector calls the generateContent REST endpoint of the model API.
type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

func (c *Connector) endpoint() string {
	return fmt.Sprintf("/v1beta/models/%s:generateContent", c.config.Model)
}

// Generate sends the prompt as a single content and returns the text of the
// first part of the first candidate.
func (c *Connector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "requesting recommendations via LLM service", zap.String("model", c.config.Model))

	req := &entity.GenerateContentRequest{
		Contents: []entity.Content{
			{Parts: []entity.Part{{Text: prompt}}},
		},
	}

	var resp entity.GenerateContentResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.endpoint(), req, &resp,
		pkghttp.WithHeader("User-Agent", userAgent),
	)
	if err != nil {
		return "", classifyError(err)
	}

	text, ok := resp.FirstText()
	if !ok {
		return "", fmt.Errorf("%w: reply has no candidate text", entity.ErrTransport)
	}

	ctxzap.Info(ctx, "model replied", zap.Int("reply_length", len(text)))

	return text, nil
}

func classifyError(err error) error {
	var netErr *pkghttp.NetworkError
	var httpErr *pkghttp.HTTPError

	switch {
	case errors.As(err, &netErr):
		return fmt.Errorf("%w: %v", entity.ErrTransport, netErr)
	case errors.As(err, &httpErr):
		return fmt.Errorf("%w: model API returned status %d", entity.ErrTransport, httpErr.StatusCode)
	default:
		return fmt.Errorf("%w: %v", entity.ErrTransport, err)
	}
}
