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

type PromptService interface {
	// Create stores a new prompt. A zero date means "now".
	Create(ctx context.Context, text, tags string, date time.Time) (*models.Prompt, error)
	Get(ctx context.Context, id uint) (*models.Prompt, error)
	List(ctx context.Context, filter repositories.PromptFilter) ([]models.Prompt, error)
	Search(ctx context.Context, query string) ([]models.Prompt, error)
	Update(ctx context.Context, id uint, text, tags string) error
	UpdateTags(ctx context.Context, id uint, tags string) error
	// Delete removes the prompt and cascades to its results, returning the
	// number of results removed.
	Delete(ctx context.Context, id uint) (int64, error)
}

type promptService struct {
	prompts repositories.PromptRepository
	log     *zap.Logger
}

func NewPromptService(prompts repositories.PromptRepository, log *zap.Logger) PromptService {
	return &promptService{prompts: prompts, log: log}
}

func (s *promptService) Create(ctx context.Context, text, tags string, date time.Time) (*models.Prompt, error) {
	if strings.TrimSpace(text) == "" {
		return nil, storeerr.Validation("prompt text is required")
	}
	if date.IsZero() {
		date = time.Now()
	}
	p := &models.Prompt{
		Date: date,
		Text: text,
		Tags: tags,
	}
	if err := s.prompts.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("prompt created", zap.Uint("id", p.ID))
	return p, nil
}

func (s *promptService) Get(ctx context.Context, id uint) (*models.Prompt, error) {
	return s.prompts.FindByID(ctx, id)
}

func (s *promptService) List(ctx context.Context, filter repositories.PromptFilter) ([]models.Prompt, error) {
	return s.prompts.List(ctx, filter)
}

func (s *promptService) Search(ctx context.Context, query string) ([]models.Prompt, error) {
	return s.prompts.Search(ctx, query)
}

func (s *promptService) Update(ctx context.Context, id uint, text, tags string) error {
	if strings.TrimSpace(text) == "" {
		return storeerr.Validation("prompt text is required")
	}
	return s.prompts.Update(ctx, id, text, tags)
}

func (s *promptService) UpdateTags(ctx context.Context, id uint, tags string) error {
	return s.prompts.UpdateTags(ctx, id, tags)
}

func (s *promptService) Delete(ctx context.Context, id uint) (int64, error) {
	removed, err := s.prompts.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.log.Info("prompt deleted", zap.Uint("id", id), zap.Int64("results_removed", removed))
	return removed, nil
}
