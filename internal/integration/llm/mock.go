package llm

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// mockReply is fenced the way the real model often answers.
const mockReply = "```json\n" + `{
  "data": {
    "actions": ["Talk it through", "Make a plan", "Take a break"],
    "preRes": [
      {"des": "You gain clarity and choose a direction within a week", "prob": 55},
      {"des": "You gather more information before deciding", "prob": 30},
      {"des": "You postpone the decision", "prob": 15}
    ],
    "mentalProfile": "Reflective and cautious, prefers structure before acting"
  }
}` + "\n```"

// MockConnector returns a canned reply instead of calling the model
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("mock generate: %w", err)
	}

	ctxzap.Info(ctx, "[MOCK] generating recommendations via LLM", zap.Int("prompt_length", len(prompt)))

	return mockReply, nil
}
