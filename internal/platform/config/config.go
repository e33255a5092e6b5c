package config

import (
	"os"
	"time"
)

// DefaultAITimeout bounds a single AI report generation attempt. The assembler
// falls back to the deterministic report when the deadline is exceeded.
var DefaultAITimeout = 25 * time.Second

// AI captures the external text-generation collaborator configuration.
// An empty APIKey means the AI path is disabled and every report uses the
// deterministic fallback.
type AI struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// Server captures process level configuration.
type Server struct {
	Addr       string
	LogLevel   string
	RulesPath  string
	AdminToken string
	AI         AI
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("PERMITLY_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	aiTimeout := DefaultAITimeout
	if s := os.Getenv("AI_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			aiTimeout = d
		}
	}

	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "openai"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return Server{
		Addr:       addr,
		LogLevel:   os.Getenv("LOG_LEVEL"),
		RulesPath:  os.Getenv("RULES_PATH"),
		AdminToken: os.Getenv("ADMIN_TOKEN"),
		AI: AI{
			Provider: provider,
			APIKey:   os.Getenv("OPENAI_API_KEY"),
			BaseURL:  baseURL,
			Model:    model,
			Timeout:  aiTimeout,
		},
	}
}
