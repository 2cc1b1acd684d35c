package ai

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicService implements TextGenerator using the Anthropic Messages API
type AnthropicService struct {
	client anthropic.Client
	model  string
}

// NewAnthropicService creates a new Anthropic service. Extra options (base URL, HTTP client)
// are passed to the SDK client.
func NewAnthropicService(apiKey, model string, opts ...option.RequestOption) *AnthropicService {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &AnthropicService{
		client: anthropic.NewClient(opts...),
		model:  model,
	}
}

// Generate implements TextGenerator
func (a *AnthropicService) Generate(ctx context.Context, prompt string) (string, error) {
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in anthropic response")
}
