package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/theoyjy/IntelliMap/internal/entity"
)

const (
	LLMBackendREST = "rest"
	LLMBackendSDK  = "sdk"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr         string   `env:"SERVER_ADDR,notEmpty"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Session store configuration
	SessionCfg SessionConfig `envPrefix:"SESSION_"`

	// External model configuration
	LLMConnectorCfg LLMConnectorConfig `envPrefix:"LLM_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Questionnaire configuration
	QuestionnairePath string `env:"QUESTIONNAIRE_PATH" envDefault:"internal/config/questionnaire.json"`

	// Questionnaire loaded from QuestionnairePath
	Questionnaire []entity.QuestionnaireItem

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

type SessionConfig struct {
	TTL           time.Duration `env:"TTL" envDefault:"1h"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"10m"`
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	Backend string `env:"BACKEND" envDefault:"rest"`
	Model   string `env:"MODEL" envDefault:"gemini-1.5-flash"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"60s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL" envDefault:"https://generativelanguage.googleapis.com"`
}

// questionnaireFile represents the structure of questionnaire.json
type questionnaireFile struct {
	Questions []entity.QuestionnaireItem `json:"questions"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	cfg.Environment = *envFlag

	return cfg, nil
}

// Parse reads the configuration from the process environment, validates it
// and loads the questionnaire.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := loadQuestionnaire(cfg); err != nil {
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.SessionCfg.TTL <= 0 {
		errors = append(errors, fmt.Sprintf("SESSION_TTL must be positive, got %s", cfg.SessionCfg.TTL))
	}

	if cfg.SessionCfg.SweepInterval <= 0 {
		errors = append(errors, fmt.Sprintf("SESSION_SWEEP_INTERVAL must be positive, got %s", cfg.SessionCfg.SweepInterval))
	}

	switch cfg.LLMConnectorCfg.Backend {
	case LLMBackendREST, LLMBackendSDK:
	default:
		errors = append(errors, fmt.Sprintf("LLM_BACKEND must be one of %q or %q, got %q", LLMBackendREST, LLMBackendSDK, cfg.LLMConnectorCfg.Backend))
	}

	if !cfg.EnableMocks && cfg.LLMConnectorCfg.Token == "" {
		errors = append(errors, "LLM_TOKEN is required unless ENABLE_MOCKS is set")
	}

	if cfg.LLMConnectorCfg.Model == "" {
		errors = append(errors, "LLM_MODEL must not be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

var defaultQuestionnaire = []entity.QuestionnaireItem{
	{Text: "Do you prefer making decisions alone or leaning on advice from others?", Options: []string{"Decide alone", "Lean on advice"}},
	{Text: "How do you usually react when facing risk?", Options: []string{"Analyse it calmly", "Avoid it", "Embrace it"}},
	{Text: "Do you lean on logical analysis or on intuition?", Options: []string{"Logical analysis", "Intuition"}},
	{Text: "How do you see change and uncertainty?", Options: []string{"Full of opportunity", "Something to control", "A source of anxiety"}},
	{Text: "Which role do you prefer to take in a team?", Options: []string{"Leader", "Coordinator", "Executor"}},
	{Text: "Do you often make detailed plans?", Options: []string{"Almost always", "Occasionally", "Never"}},
	{Text: "How do you respond when things do not go to plan?", Options: []string{"Adjust the plan", "Look for help", "Feel confused"}},
	{Text: "Do you learn more from data or from experience?", Options: []string{"From data", "From experience"}},
	{Text: "What do you do when a decision must be made quickly?", Options: []string{"Assess quickly and decide", "Trust intuition", "Ask others"}},
	{Text: "Think of a complex decision you made. What did you rely on?", Options: []string{"Myself", "Advice", "Past experience"}},
}

// DefaultQuestionnaire returns a copy of the built-in questionnaire.
func DefaultQuestionnaire() []entity.QuestionnaireItem {
	questions := make([]entity.QuestionnaireItem, len(defaultQuestionnaire))
	copy(questions, defaultQuestionnaire)
	return questions
}

func loadQuestionnaire(cfg *Config) error {
	path := cfg.QuestionnairePath

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("Warning: questionnaire file not found at %s, using default questions\n", path)
		cfg.Questionnaire = DefaultQuestionnaire()
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read questionnaire file: %w", err)
	}

	if len(data) == 0 {
		return fmt.Errorf("questionnaire file is empty: %s", path)
	}

	var file questionnaireFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse questionnaire JSON: %w", err)
	}

	if len(file.Questions) == 0 {
		return fmt.Errorf("questionnaire file contains no questions: %s", path)
	}

	cfg.Questionnaire = file.Questions

	fmt.Printf("Loaded %d questionnaire questions from %s\n", len(cfg.Questionnaire), path)
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
