package conversation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/theoyjy/IntelliMap/internal/entity"
	"github.com/theoyjy/IntelliMap/internal/pkg/logger"
	"go.uber.org/zap"
)

// ConversationUsecase runs conversational turns against the model.
type ConversationUsecase struct {
	conversations ConversationRepository
	model         ModelConnector
	questionnaire []entity.QuestionnaireItem
	logger        *zap.Logger
}

// NewUsecase creates a new conversation use case
func NewUsecase(
	conversations ConversationRepository,
	model ModelConnector,
	questionnaire []entity.QuestionnaireItem,
	logger *zap.Logger,
) *ConversationUsecase {
	return &ConversationUsecase{
		conversations: conversations,
		model:         model,
		questionnaire: questionnaire,
		logger:        logger,
	}
}

// StartProfile runs the initial profiling turn.
func (uc *ConversationUsecase) StartProfile(ctx context.Context, req *entity.FirstProfileRequest) (*entity.RecommendationResult, error) {
	return uc.ProcessTurn(ctx, req.UserID, InitialProfileTurn{
		EventDescription: req.EventDesc,
		Answers:          req.Answer,
	})
}

// UpdateMap runs a follow-up turn after the user extended the decision path.
func (uc *ConversationUsecase) UpdateMap(ctx context.Context, req *entity.MapUpdateRequest) (*entity.RecommendationResult, error) {
	return uc.ProcessTurn(ctx, req.UserID, FollowUpTurn{
		NewDescription: req.NewDesc,
		ActionsTaken:   req.ActionsTaken,
	})
}

// Questionnaire returns the profiling questions.
func (uc *ConversationUsecase) Questionnaire() []entity.QuestionnaireItem {
	return uc.questionnaire
}

// GetConversation returns the user's conversation without creating or refreshing it.
func (uc *ConversationUsecase) GetConversation(ctx context.Context, userID string) (*entity.ConversationRecord, error) {
	record, ok := uc.conversations.Peek(ctx, userID)
	if !ok || !record.Initialized() {
		return nil, entity.ErrSessionExpired
	}
	return record, nil
}

// ProcessTurn merges the user's input into the conversation, asks the model and
// returns the parsed recommendation. User input stored before the model call is
// kept even when the call or the parsing fails; the mental profile is only
// updated from a reply that parsed.
func (uc *ConversationUsecase) ProcessTurn(ctx context.Context, userID string, turn Turn) (*entity.RecommendationResult, error) {
	ctx = logger.AddFields(ctx,
		zap.String("turn_id", uuid.NewString()),
		zap.String("user_id", userID),
		zap.String("turn_kind", turn.Kind()),
	)

	record, err := uc.conversations.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}

	if isFollowUp(turn) && !record.Initialized() {
		ctxzap.Warn(ctx, "follow-up turn without an initialized conversation")
		return nil, entity.ErrSessionExpired
	}

	uc.mergeTurn(record, turn)
	if err := uc.conversations.Put(ctx, record); err != nil {
		return nil, fmt.Errorf("save user input: %w", err)
	}

	prompt := ComposePrompt(record, turn)
	ctxzap.Debug(ctx, "prompt composed", zap.Int("prompt_length", len(prompt)))

	raw, err := uc.model.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate recommendations: %w", err)
	}

	interpretation, err := InterpretReply(raw)
	if err != nil {
		ctxzap.Error(ctx, "failed to interpret model reply", zap.Error(err), zap.String("raw_reply", raw))
		return nil, fmt.Errorf("interpret model reply: %w", err)
	}

	if interpretation.HasProfile {
		record.MentalProfile = interpretation.MentalProfile
		if err := uc.conversations.Put(ctx, record); err != nil {
			return nil, fmt.Errorf("save mental profile: %w", err)
		}
	} else {
		ctxzap.Warn(ctx, "model reply has no mental profile, keeping the previous one")
	}

	result := interpretation.Result
	ctxzap.Info(ctx, "turn processed",
		zap.Strings("actions", result.Actions),
		zap.Int("outcome_count", len(result.Outcomes)),
		zap.Float64s("outcome_fractions", outcomeFractions(result.Outcomes)),
	)

	return &result, nil
}

func outcomeFractions(outcomes []entity.Outcome) []float64 {
	fractions := make([]float64, 0, len(outcomes))
	for _, o := range outcomes {
		fractions = append(fractions, o.Fraction())
	}
	return fractions
}
