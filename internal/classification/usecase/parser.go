package usecase

import (
	"fmt"
	"strings"

	"classificador-backend/internal/classification/domain"
)

const (
	classificationPrefix    = "Classificação: "
	suggestedResponsePrefix = "Resposta Sugerida: "
)

// ParseClassificationResponse extracts the label from line 0 and the suggested reply from line 1.
// Lines after the second are ignored. Output with fewer than two lines is an upstream failure.
func ParseClassificationResponse(raw string) (*ParsedClassification, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: %w: expected 2 lines, got %d", domain.ErrUpstream, domain.ErrMalformedResponse, len(lines))
	}

	return &ParsedClassification{
		Classification:    stripLabel(lines[0], classificationPrefix),
		SuggestedResponse: stripLabel(lines[1], suggestedResponsePrefix),
	}, nil
}

func stripLabel(line, prefix string) string {
	line = strings.TrimLeft(line, " \t")
	return strings.TrimSpace(strings.TrimPrefix(line, prefix))
}
