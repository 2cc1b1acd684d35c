package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"go.uber.org/zap"
)

// NamedGenerator pairs a TextGenerator with a provider name used in logs.
type NamedGenerator struct {
	Name      string
	Generator TextGenerator
}

// FallbackService implements provider routing with fallback:
// the primary provider is tried first, the secondary is used when it fails.
// A quota error from the secondary gives the primary one more attempt.
type FallbackService struct {
	primary   *NamedGenerator
	secondary *NamedGenerator
	log       *zap.Logger
}

// NewFallbackService creates a new fallback service. Either provider may be nil.
func NewFallbackService(primary, secondary *NamedGenerator, log *zap.Logger) *FallbackService {
	if log == nil {
		log = zap.NewNop()
	}
	return &FallbackService{
		primary:   primary,
		secondary: secondary,
		log:       log,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return containsAny(err.Error(),
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"EOF",
	)
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	return containsAny(err.Error(),
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
		"RESOURCE_EXHAUSTED",
	)
}

func containsAny(s string, indicators ...string) bool {
	s = strings.ToLower(s)
	for _, indicator := range indicators {
		if strings.Contains(s, strings.ToLower(indicator)) {
			return true
		}
	}
	return false
}

// Generate implements TextGenerator
func (f *FallbackService) Generate(ctx context.Context, prompt string) (string, error) {
	var primaryErr error
	if f.primary != nil {
		result, err := f.primary.Generator.Generate(ctx, prompt)
		if err == nil {
			return result, nil
		}
		primaryErr = err

		switch {
		case isQuotaError(err):
			f.log.Warn("ai provider quota exhausted, falling back", zap.String("provider", f.primary.Name), zap.Error(err))
		case isConnectionError(err):
			f.log.Warn("ai provider unreachable, falling back", zap.String("provider", f.primary.Name), zap.Error(err))
		default:
			f.log.Warn("ai provider error, falling back", zap.String("provider", f.primary.Name), zap.Error(err))
		}
	}

	// Caller gave up; don't spend another round-trip
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if f.secondary != nil {
		result, err := f.secondary.Generator.Generate(ctx, prompt)
		if err == nil {
			return result, nil
		}

		if isQuotaError(err) && f.primary != nil && !isQuotaError(primaryErr) {
			f.log.Warn("ai provider quota exhausted, retrying primary", zap.String("provider", f.secondary.Name), zap.Error(err))
			return f.primary.Generator.Generate(ctx, prompt)
		}

		return "", fmt.Errorf("%s generation failed: %w", f.secondary.Name, err)
	}

	if primaryErr != nil {
		return "", fmt.Errorf("%s generation failed: %w", f.primary.Name, primaryErr)
	}
	return "", fmt.Errorf("no AI provider available")
}
