package ai

import (
	"context"
	"fmt"

	"classificador-backend/pkg/gemini"

	"go.uber.org/zap"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType

	// Gemini config
	GeminiAPIKey string
	GeminiModel  string

	// Ollama endpoint and model are read through Settings on every call
	Settings *RuntimeSettings

	// Anthropic config
	AnthropicAPIKey string
	AnthropicModel  string
}

// closer is implemented by providers holding network clients.
type closer interface {
	Close() error
}

// NewTextGenerator creates a TextGenerator based on the config.
// The returned cleanup func releases provider clients and is never nil.
func NewTextGenerator(ctx context.Context, cfg Config, log *zap.Logger) (TextGenerator, func(), error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Settings == nil {
		cfg.Settings = NewRuntimeSettings("", "")
	}
	ollama := NewOllamaServiceWithGetters(cfg.Settings.OllamaBaseURL, cfg.Settings.OllamaModel)

	switch cfg.Provider {
	case ProviderGemini:
		svc, err := gemini.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, func() {}, err
		}
		return svc, cleanup(svc), nil

	case ProviderOllama:
		return ollama, func() {}, nil

	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, func() {}, fmt.Errorf("ANTHROPIC_API_KEY is required for Anthropic provider")
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), func() {}, nil

	case ProviderAuto, "":
		// Gemini first if API key is available, Ollama as the fallback
		fallbackOllama := &NamedGenerator{Name: string(ProviderOllama), Generator: ollama}
		if cfg.GeminiAPIKey == "" {
			return NewFallbackService(fallbackOllama, nil, log), func() {}, nil
		}
		svc, err := gemini.NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("gemini unavailable, using ollama only", zap.Error(err))
			return NewFallbackService(fallbackOllama, nil, log), func() {}, nil
		}
		primary := &NamedGenerator{Name: string(ProviderGemini), Generator: svc}
		return NewFallbackService(primary, fallbackOllama, log), cleanup(svc), nil

	default:
		return nil, func() {}, fmt.Errorf("unsupported AI_PROVIDER %q", cfg.Provider)
	}
}

func cleanup(c closer) func() {
	return func() { _ = c.Close() }
}
