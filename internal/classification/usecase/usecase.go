package usecase

import (
	"context"

	"classificador-backend/internal/classification/domain"
)

// ClassificationUsecase defines the interface for classification business logic
type ClassificationUsecase interface {
	// Classify asks the AI provider to label emailText, stores the outcome
	// (best effort) and returns the parsed pair.
	Classify(ctx context.Context, emailText string) (*ParsedClassification, error)

	// ListClassifications returns every stored record, newest first
	ListClassifications(ctx context.Context) ([]*domain.Classification, error)

	// GetClassification returns one record or domain.ErrNotFound
	GetClassification(ctx context.Context, id uint) (*domain.Classification, error)
}

// ParsedClassification is the structured form of the AI answer.
type ParsedClassification struct {
	Classification    string `json:"classification"`
	SuggestedResponse string `json:"suggestedResponse"`
}
