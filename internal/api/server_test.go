package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	profileapi "github.com/theoyjy/IntelliMap/internal/api/profile"
	"github.com/theoyjy/IntelliMap/internal/entity"
	"github.com/theoyjy/IntelliMap/internal/pkg/validator"
	"go.uber.org/zap"
)

type nopUsecase struct{}

func (nopUsecase) StartProfile(context.Context, *entity.FirstProfileRequest) (*entity.RecommendationResult, error) {
	return &entity.RecommendationResult{}, nil
}

func (nopUsecase) UpdateMap(context.Context, *entity.MapUpdateRequest) (*entity.RecommendationResult, error) {
	return &entity.RecommendationResult{}, nil
}

func (nopUsecase) Questionnaire() []entity.QuestionnaireItem { return nil }

func (nopUsecase) GetConversation(context.Context, string) (*entity.ConversationRecord, error) {
	return nil, entity.ErrSessionExpired
}

func newTestServer() http.Handler {
	handler := profileapi.NewHandler(nopUsecase{}, validator.NewValidator())
	return SetupRouter(RouterConfig{AllowedOrigins: []string{"http://localhost:4200"}}, handler, zap.NewNop())
}

func TestSetupRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestSetupRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/firstProfile", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_SwaggerYAML(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/swagger.yaml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/firstProfile")
}
