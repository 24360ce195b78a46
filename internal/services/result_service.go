package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"chatlist/internal/models"
	"chatlist/internal/repositories"
	"chatlist/internal/storeerr"
)

// NewResult is the input for saving a model response against a prompt.
// Nil metric fields mean "not recorded".
type NewResult struct {
	PromptID     uint
	ModelID      uint
	ResponseText string
	TokensUsed   *int
	ResponseTime *float64
}

type ResultService interface {
	Save(ctx context.Context, in NewResult) (*models.Result, error)
	// SaveBatch persists every result or none of them.
	SaveBatch(ctx context.Context, in []NewResult) ([]models.Result, error)
	ListByPrompt(ctx context.Context, promptID uint) ([]models.ResultWithModel, error)
	ListAll(ctx context.Context) ([]models.ResultDetail, error)
	Search(ctx context.Context, query string) ([]models.ResultDetail, error)
	Delete(ctx context.Context, id uint) error
	DeleteByPrompt(ctx context.Context, promptID uint) (int64, error)
}

type resultService struct {
	results repositories.ResultRepository
	log     *zap.Logger
}

func NewResultService(results repositories.ResultRepository, log *zap.Logger) ResultService {
	return &resultService{results: results, log: log}
}

func (in NewResult) validate() error {
	if strings.TrimSpace(in.ResponseText) == "" {
		return storeerr.Validation("response text is required")
	}
	if in.TokensUsed != nil && *in.TokensUsed < 0 {
		return storeerr.Validation("tokens used must not be negative")
	}
	if in.ResponseTime != nil && *in.ResponseTime < 0 {
		return storeerr.Validation("response time must not be negative")
	}
	return nil
}

func (in NewResult) toModel(now time.Time) models.Result {
	return models.Result{
		PromptID:     in.PromptID,
		ModelID:      in.ModelID,
		ResponseText: in.ResponseText,
		SavedAt:      now,
		TokensUsed:   in.TokensUsed,
		ResponseTime: in.ResponseTime,
	}
}

func (s *resultService) Save(ctx context.Context, in NewResult) (*models.Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	res := in.toModel(time.Now())
	if err := s.results.Create(ctx, &res); err != nil {
		return nil, err
	}
	s.log.Info("result saved",
		zap.Uint("id", res.ID),
		zap.Uint("prompt_id", res.PromptID),
		zap.Uint("model_id", res.ModelID))
	return &res, nil
}

func (s *resultService) SaveBatch(ctx context.Context, in []NewResult) ([]models.Result, error) {
	for _, r := range in {
		if err := r.validate(); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	rows := make([]models.Result, len(in))
	for i, r := range in {
		rows[i] = r.toModel(now)
	}
	if err := s.results.CreateBatch(ctx, rows); err != nil {
		return nil, err
	}
	s.log.Info("results saved", zap.Int("count", len(rows)))
	return rows, nil
}

func (s *resultService) ListByPrompt(ctx context.Context, promptID uint) ([]models.ResultWithModel, error) {
	return s.results.ListByPrompt(ctx, promptID)
}

func (s *resultService) ListAll(ctx context.Context) ([]models.ResultDetail, error) {
	return s.results.ListAll(ctx)
}

func (s *resultService) Search(ctx context.Context, query string) ([]models.ResultDetail, error) {
	return s.results.Search(ctx, query)
}

func (s *resultService) Delete(ctx context.Context, id uint) error {
	return s.results.Delete(ctx, id)
}

func (s *resultService) DeleteByPrompt(ctx context.Context, promptID uint) (int64, error) {
	return s.results.DeleteByPrompt(ctx, promptID)
}
