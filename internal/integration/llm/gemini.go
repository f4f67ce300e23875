package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/theoyjy/IntelliMap/internal/config"
	"github.com/theoyjy/IntelliMap/internal/entity"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiConnector talks to the model through the Google GenAI SDK.
type GeminiConnector struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

func NewGeminiConnector(ctx context.Context, cfg config.LLMConnectorConfig, logger *zap.Logger) (*GeminiConnector, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: LLM_TOKEN", entity.ErrMissingField)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Token,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiConnector{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}, nil
}

func (g *GeminiConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "requesting recommendations via genai SDK", zap.String("model", g.model))

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{{Text: prompt}}},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrTransport, err)
	}

	text, ok := firstCandidateText(resp)
	if !ok {
		return "", fmt.Errorf("%w: reply has no candidate text", entity.ErrTransport)
	}

	ctxzap.Info(ctx, "model replied", zap.Int("reply_length", len(text)))

	return text, nil
}

func firstCandidateText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return "", false
	}
	text := content.Parts[0].Text
	return text, strings.TrimSpace(text) != ""
}
