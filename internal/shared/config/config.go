package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"transparency-ai/internal/shared/telemetry"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultGeminiModel = "gemini-1.5-flash"
	defaultOpenAIModel = "gpt-4o-mini"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	Debug           bool
	LogLevel        string
	ServiceName     string
	CORSAllowOrigin []string

	AIProvider       string
	AIModel          string
	GeminiAPIKey     string
	GeminiBaseURL    string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	AITimeout        time.Duration
	AIRequestsPerMin int
	RateLimitAIRPS   float64
	RateLimitAIBurst int
}

// APIKey returns the credential for the selected provider.
func (c Config) APIKey() string {
	if c.AIProvider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// AIConfigured reports whether a credential for the selected provider is present.
func (c Config) AIConfigured() bool {
	return strings.TrimSpace(c.APIKey()) != ""
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := loadYAMLFile(path); err != nil {
			telemetry.Warn("config.file_ignored", map[string]any{"path": path, "error": err.Error()})
		}
	}

	provider := normalizeProvider(getEnv("AI_PROVIDER", ProviderGemini))
	model := getEnv("AI_MODEL", "")
	if model == "" {
		model = defaultModel(provider)
	}

	return Config{
		Port:             getEnv("PORT", "5001"),
		Env:              normalizeEnv(getEnv("ENV", "dev")),
		Debug:            getBool("DEBUG", false),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ServiceName:      getEnv("SERVICE_NAME", "Altibbe AI Service"),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		AIProvider:       provider,
		AIModel:          model,
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:    getEnv("GEMINI_BASE_URL", ""),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", ""),
		AITimeout:        time.Duration(getInt("AI_TIMEOUT_SECONDS", 30)) * time.Second,
		AIRequestsPerMin: getInt("AI_REQUESTS_PER_MINUTE", 0),
		RateLimitAIRPS:   getFloat("RATE_LIMIT_AI_RPS", 0),
		RateLimitAIBurst: getInt("RATE_LIMIT_AI_BURST", 0),
	}
}

func defaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return defaultOpenAIModel
	}
	return defaultGeminiModel
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getInt(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func getFloat(key string, def float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func getBool(key string, def bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ProviderOpenAI:
		return ProviderOpenAI
	default:
		return ProviderGemini
	}
}
