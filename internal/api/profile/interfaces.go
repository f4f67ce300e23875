package profile

import (
	"context"

	"github.com/theoyjy/IntelliMap/internal/entity"
)

type ConversationUsecase interface {
	StartProfile(ctx context.Context, req *entity.FirstProfileRequest) (*entity.RecommendationResult, error)
	UpdateMap(ctx context.Context, req *entity.MapUpdateRequest) (*entity.RecommendationResult, error)
	Questionnaire() []entity.QuestionnaireItem
	GetConversation(ctx context.Context, userID string) (*entity.ConversationRecord, error)
}
