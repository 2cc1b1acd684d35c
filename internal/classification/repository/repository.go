package repository

import (
	"context"

	"classificador-backend/internal/classification/domain"
)

// ClassificationRepository defines data access for stored classifications.
// There is no update or delete: records are append-only.
type ClassificationRepository interface {
	// Create inserts a new record and fills its ID and timestamps
	Create(ctx context.Context, c *domain.Classification) error

	// FindAll returns every record, newest first
	FindAll(ctx context.Context) ([]*domain.Classification, error)

	// FindByID returns nil, nil when no record has the given id
	FindByID(ctx context.Context, id uint) (*domain.Classification, error)

	Count(ctx context.Context) (int64, error)
}
