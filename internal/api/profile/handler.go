package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/theoyjy/IntelliMap/internal/entity"
	"github.com/theoyjy/IntelliMap/internal/pkg/logger"
	"github.com/theoyjy/IntelliMap/internal/pkg/response"
	"github.com/theoyjy/IntelliMap/internal/pkg/validator"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

const (
	msgInvalidRequest  = "Invalid request"
	msgSessionExpired  = "Session expired, please restart profiling"
	msgUnavailable     = "Service unavailable"
	msgGenerateFailure = "Failed to generate recommendations"
)

type Handler struct {
	usecase   ConversationUsecase
	validator *validator.Validator
}

func NewHandler(
	usecase ConversationUsecase,
	validator *validator.Validator,
) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// FirstProfile handles POST /api/firstProfile - Start profiling from questionnaire answers
func (h *Handler) FirstProfile(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "FirstProfile")

	var req *entity.FirstProfileRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	if err := h.validator.ValidateFirstProfile(req); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctx = logger.AddFields(ctx, zap.String("user_id", req.UserID))
	ctxzap.Info(ctx, "starting profiling", zap.Int("answer_count", len(req.Answer)))

	result, err := h.usecase.StartProfile(ctx, req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "profiling finished successfully")
	response.Success(w, toResultData(result))
}

// MapUpdate handles POST /api/mapUpdate - Re-query after the user extended the decision path
func (h *Handler) MapUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "MapUpdate")

	var req *entity.MapUpdateRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	if err := h.validator.ValidateMapUpdate(req); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctx = logger.AddFields(ctx, zap.String("user_id", req.UserID))
	ctxzap.Info(ctx, "updating decision map", zap.Strings("actions_taken", req.ActionsTaken))

	result, err := h.usecase.UpdateMap(ctx, req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "decision map updated successfully")
	response.Success(w, toResultData(result))
}

// Questionnaire handles GET /api/questionnaire - List profiling questions
func (h *Handler) Questionnaire(w http.ResponseWriter, r *http.Request) {
	response.Success(w, toQuestionnaireDTO(h.usecase.Questionnaire()))
}

// GetConversation handles GET /api/conversation/{userId} - Inspect a live conversation
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "userId")

	ctx = logger.AddFields(ctx,
		zap.String("user_id", userID),
		zap.String("action", "GetConversation"),
	)

	ctxzap.Debug(ctx, "fetching conversation")

	record, err := h.usecase.GetConversation(ctx, userID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toConversationDTO(record))
}

// decodeBody decodes a JSON body into dst. A literal null leaves dst nil.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %v", entity.ErrInvalidRequest, err)
	}
	return nil
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if status >= http.StatusInternalServerError {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Warn(ctx, message, zap.Error(err))
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrInvalidRequest) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, msgInvalidRequest, err)
	} else if errors.Is(err, entity.ErrSessionExpired) {
		h.respondError(ctx, w, http.StatusGone, msgSessionExpired, err)
	} else if errors.Is(err, entity.ErrTransport) {
		h.respondError(ctx, w, http.StatusServiceUnavailable, msgUnavailable, err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, msgGenerateFailure, err)
	}
}
