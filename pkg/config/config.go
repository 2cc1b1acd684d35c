package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	// Database
	DBDriver    string // "sqlite" or "postgres"
	DBPath      string
	DatabaseURL string

	// AI provider
	AIProvider      string // "gemini", "ollama", "anthropic" or "auto"
	AITimeout       time.Duration
	GeminiApiKey    string
	GeminiModel     string
	OllamaBaseURL   string
	OllamaModel     string
	AnthropicAPIKey string
	AnthropicModel  string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	aiTimeout := 30 * time.Second
	if t := os.Getenv("AI_TIMEOUT"); t != "" {
		if parsed, err := time.ParseDuration(t); err == nil && parsed > 0 {
			aiTimeout = parsed
		}
	}

	return &Config{
		Port:            getEnv("PORT", "3001"),
		GinMode:         getEnv("GIN_MODE", "release"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBPath:          getEnv("DB_PATH", "database.sqlite"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		AIProvider:      getEnv("AI_PROVIDER", "auto"),
		AITimeout:       aiTimeout,
		GeminiApiKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:     getEnv("OLLAMA_MODEL", "llama3"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
