package ai

import "context"

// TextGenerator sends a prompt to a generative language model and returns its raw text answer.
// Implement this interface to add new AI providers (Gemini, Ollama, Anthropic, etc.)
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini    ProviderType = "gemini"
	ProviderOllama    ProviderType = "ollama"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderAuto      ProviderType = "auto"
)
