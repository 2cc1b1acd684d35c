package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"classificador-backend/internal/classification/domain"
	"classificador-backend/internal/classification/repository"
	"classificador-backend/pkg/ai"
	"classificador-backend/pkg/metrics"

	"go.uber.org/zap"
)

// classificationUsecase implements ClassificationUsecase interface
type classificationUsecase struct {
	repo      repository.ClassificationRepository
	generator ai.TextGenerator
	timeout   time.Duration
	log       *zap.Logger
	metrics   *metrics.Metrics
}

// NewClassificationUsecase creates a new instance of classificationUsecase.
// timeout bounds every AI call; zero means no bound beyond the caller's context.
func NewClassificationUsecase(
	repo repository.ClassificationRepository,
	generator ai.TextGenerator,
	timeout time.Duration,
	log *zap.Logger,
	m *metrics.Metrics,
) ClassificationUsecase {
	return &classificationUsecase{
		repo:      repo,
		generator: generator,
		timeout:   timeout,
		log:       log,
		metrics:   m,
	}
}

func (u *classificationUsecase) Classify(ctx context.Context, emailText string) (*ParsedClassification, error) {
	if strings.TrimSpace(emailText) == "" {
		u.metrics.Requests.WithLabelValues("invalid").Inc()
		return nil, domain.ErrEmptyEmailText
	}

	raw, err := u.generate(ctx, BuildPrompt(emailText))
	if err != nil {
		u.metrics.Requests.WithLabelValues("upstream_error").Inc()
		return nil, err
	}

	parsed, err := ParseClassificationResponse(raw)
	if err != nil {
		u.metrics.Requests.WithLabelValues("upstream_error").Inc()
		u.log.Warn("unparseable ai response", zap.Error(err), zap.Int("response_len", len(raw)))
		return nil, err
	}

	label := parsed.Classification
	if !domain.IsKnownLabel(label) {
		label = "other"
	}
	u.metrics.Labels.WithLabelValues(label).Inc()
	u.metrics.Requests.WithLabelValues("success").Inc()

	// Durability is best effort: a failed insert never hides the classification from the caller
	record := &domain.Classification{
		EmailText:         emailText,
		Classification:    parsed.Classification,
		SuggestedResponse: parsed.SuggestedResponse,
	}
	if err := u.repo.Create(ctx, record); err != nil {
		u.metrics.PersistenceFailure.Inc()
		u.log.Error("failed to save classification", zap.Error(err), zap.String("classification", parsed.Classification))
	}

	return parsed, nil
}

func (u *classificationUsecase) generate(ctx context.Context, prompt string) (string, error) {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := u.generator.Generate(ctx, prompt)
	if err == nil && strings.TrimSpace(raw) == "" {
		err = fmt.Errorf("%w: empty response", domain.ErrMalformedResponse)
	}
	u.metrics.ObserveUpstream(start, err)

	if err != nil {
		u.log.Error("ai classification call failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return "", fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	return raw, nil
}

func (u *classificationUsecase) ListClassifications(ctx context.Context) ([]*domain.Classification, error) {
	records, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list classifications: %w", err)
	}
	return records, nil
}

func (u *classificationUsecase) GetClassification(ctx context.Context, id uint) (*domain.Classification, error) {
	record, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get classification %d: %w", id, err)
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return record, nil
}
