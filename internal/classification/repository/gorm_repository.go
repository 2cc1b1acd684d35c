package repository

import (
	"context"
	"errors"
	"time"

	"classificador-backend/internal/classification/domain"

	"gorm.io/gorm"
)

// gormClassificationRepository implements ClassificationRepository using GORM
type gormClassificationRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormClassificationRepository creates a new GORM-based ClassificationRepository
func NewGormClassificationRepository(db *gorm.DB) ClassificationRepository {
	return &gormClassificationRepository{db: db, now: time.Now}
}

// AutoMigrate creates or updates the classifications table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Classification{})
}

func (r *gormClassificationRepository) Create(ctx context.Context, c *domain.Classification) error {
	now := r.now()
	c.ID = 0
	c.CreatedAt = now
	c.UpdatedAt = now
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormClassificationRepository) FindAll(ctx context.Context) ([]*domain.Classification, error) {
	records := make([]*domain.Classification, 0)
	// id breaks ties between records created within the same clock tick
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormClassificationRepository) FindByID(ctx context.Context, id uint) (*domain.Classification, error) {
	var record domain.Classification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *gormClassificationRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Classification{}).Count(&total).Error
	return total, err
}
