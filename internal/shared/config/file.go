package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML config file. Values only fill
// environment variables that are not already set.
type fileConfig struct {
	Port        string   `yaml:"port"`
	Env         string   `yaml:"env"`
	ServiceName string   `yaml:"service_name"`
	CORSOrigins []string `yaml:"cors_allow_origins"`
	Log         struct {
		Level string `yaml:"level"`
		Debug *bool  `yaml:"debug"`
	} `yaml:"log"`
	AI struct {
		Provider          string `yaml:"provider"`
		Model             string `yaml:"model"`
		TimeoutSeconds    int    `yaml:"timeout_seconds"`
		RequestsPerMinute int    `yaml:"requests_per_minute"`
		Gemini            struct {
			APIKey  string `yaml:"api_key"`
			BaseURL string `yaml:"base_url"`
		} `yaml:"gemini"`
		OpenAI struct {
			APIKey  string `yaml:"api_key"`
			BaseURL string `yaml:"base_url"`
		} `yaml:"openai"`
	} `yaml:"ai"`
	RateLimit struct {
		AIRPS   float64 `yaml:"ai_rps"`
		AIBurst int     `yaml:"ai_burst"`
	} `yaml:"rate_limit"`
}

func loadYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	fc.apply()
	return nil
}

func (fc fileConfig) apply() {
	setDefault("PORT", fc.Port)
	setDefault("ENV", fc.Env)
	setDefault("SERVICE_NAME", fc.ServiceName)
	if len(fc.CORSOrigins) > 0 {
		setDefault("CORS_ALLOW_ORIGINS", strings.Join(fc.CORSOrigins, ","))
	}
	setDefault("LOG_LEVEL", fc.Log.Level)
	if fc.Log.Debug != nil {
		setDefault("DEBUG", strconv.FormatBool(*fc.Log.Debug))
	}
	setDefault("AI_PROVIDER", fc.AI.Provider)
	setDefault("AI_MODEL", fc.AI.Model)
	if fc.AI.TimeoutSeconds > 0 {
		setDefault("AI_TIMEOUT_SECONDS", strconv.Itoa(fc.AI.TimeoutSeconds))
	}
	if fc.AI.RequestsPerMinute > 0 {
		setDefault("AI_REQUESTS_PER_MINUTE", strconv.Itoa(fc.AI.RequestsPerMinute))
	}
	setDefault("GEMINI_API_KEY", fc.AI.Gemini.APIKey)
	setDefault("GEMINI_BASE_URL", fc.AI.Gemini.BaseURL)
	setDefault("OPENAI_API_KEY", fc.AI.OpenAI.APIKey)
	setDefault("OPENAI_BASE_URL", fc.AI.OpenAI.BaseURL)
	if fc.RateLimit.AIRPS > 0 {
		setDefault("RATE_LIMIT_AI_RPS", strconv.FormatFloat(fc.RateLimit.AIRPS, 'f', -1, 64))
	}
	if fc.RateLimit.AIBurst > 0 {
		setDefault("RATE_LIMIT_AI_BURST", strconv.Itoa(fc.RateLimit.AIBurst))
	}
}

func setDefault(key, val string) {
	if val == "" {
		return
	}
	if _, ok := os.LookupEnv(key); ok {
		return
	}
	_ = os.Setenv(key, val)
}
