package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("LLM_TOKEN", "test-key")
	t.Setenv("QUESTIONNAIRE_PATH", filepath.Join(t.TempDir(), "missing.json"))
}

func TestParse_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.SessionCfg.TTL)
	assert.Equal(t, 10*time.Minute, cfg.SessionCfg.SweepInterval)
	assert.Equal(t, LLMBackendREST, cfg.LLMConnectorCfg.Backend)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLMConnectorCfg.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.LLMConnectorCfg.Url)
	assert.Equal(t, 60*time.Second, cfg.LLMConnectorCfg.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultQuestionnaire(), cfg.Questionnaire)
}

func TestParse_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LLM_BACKEND", "sdk")
	t.Setenv("LLM_MODEL", "gemini-2.0-flash")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:4200,https://intellimap.example")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.SessionCfg.TTL)
	assert.Equal(t, LLMBackendSDK, cfg.LLMConnectorCfg.Backend)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLMConnectorCfg.Model)
	assert.Equal(t, []string{"http://localhost:4200", "https://intellimap.example"}, cfg.CORSAllowedOrigins)
}

func TestParse_CollectsValidationErrors(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LLM_TOKEN", "")
	t.Setenv("LLM_BACKEND", "grpc")
	t.Setenv("SESSION_TTL", "0s")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_TOKEN")
	assert.Contains(t, err.Error(), "LLM_BACKEND")
	assert.Contains(t, err.Error(), "SESSION_TTL")
}

func TestParse_MocksDoNotNeedToken(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LLM_TOKEN", "")
	t.Setenv("ENABLE_MOCKS", "true")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.True(t, cfg.EnableMocks)
}

func TestParse_QuestionnaireFile(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("QUESTIONNAIRE_PATH", "questionnaire.json")

	cfg, err := Parse()
	require.NoError(t, err)
	require.Len(t, cfg.Questionnaire, 10)
	assert.NotEmpty(t, cfg.Questionnaire[0].Options)
}

func TestParse_BadQuestionnaireFile(t *testing.T) {
	setBaseEnv(t)
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"questions":[]}`), 0o600))
	t.Setenv("QUESTIONNAIRE_PATH", path)

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no questions")
}

func TestGetEnvFile(t *testing.T) {
	assert.Equal(t, ".env.prod", getEnvFile("prod"))
	assert.Equal(t, ".env.local", getEnvFile("dev"))
	assert.Equal(t, ".env.staging", getEnvFile("staging"))
}
