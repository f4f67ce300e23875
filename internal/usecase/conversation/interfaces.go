package conversation

import (
	"context"

	"github.com/theoyjy/IntelliMap/internal/entity"
)

type ConversationRepository interface {
	Get(ctx context.Context, userID string) (*entity.ConversationRecord, error)
	Put(ctx context.Context, record *entity.ConversationRecord) error
	Peek(ctx context.Context, userID string) (*entity.ConversationRecord, bool)
}

// ModelConnector sends a prompt to the generative model and returns its raw text reply.
type ModelConnector interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
