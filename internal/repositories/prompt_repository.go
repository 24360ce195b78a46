package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"chatlist/internal/models"
	"chatlist/internal/storeerr"
)

// PromptFilter narrows List results. Zero-value fields are ignored.
type PromptFilter struct {
	TagContains string
	From        time.Time
	To          time.Time
}

type PromptRepository interface {
	Create(ctx context.Context, p *models.Prompt) error
	FindByID(ctx context.Context, id uint) (*models.Prompt, error)
	List(ctx context.Context, filter PromptFilter) ([]models.Prompt, error)
	Search(ctx context.Context, query string) ([]models.Prompt, error)
	Update(ctx context.Context, id uint, text, tags string) error
	UpdateTags(ctx context.Context, id uint, tags string) error
	// Delete removes the prompt and all its results in one transaction,
	// returning how many results went with it.
	Delete(ctx context.Context, id uint) (int64, error)
}

type promptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Create(ctx context.Context, p *models.Prompt) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *promptRepository) FindByID(ctx context.Context, id uint) (*models.Prompt, error) {
	var p models.Prompt
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storeerr.NotFound("prompt %d", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *promptRepository) List(ctx context.Context, filter PromptFilter) ([]models.Prompt, error) {
	var prompts []models.Prompt
	q := r.db.WithContext(ctx).Order("date DESC, id DESC")
	if filter.TagContains != "" {
		q = q.Where("tags LIKE ?", "%"+filter.TagContains+"%")
	}
	if !filter.From.IsZero() {
		q = q.Where("date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("date <= ?", filter.To)
	}
	if err := q.Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func (r *promptRepository) Search(ctx context.Context, query string) ([]models.Prompt, error) {
	var prompts []models.Prompt
	like := "%" + query + "%"
	if err := r.db.WithContext(ctx).
		Where("prompt LIKE ? OR tags LIKE ?", like, like).
		Order("date DESC, id DESC").
		Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func (r *promptRepository) Update(ctx context.Context, id uint, text, tags string) error {
	res := r.db.WithContext(ctx).Model(&models.Prompt{}).
		Where("id = ?", id).
		Updates(map[string]any{"prompt": text, "tags": tags})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storeerr.NotFound("prompt %d", id)
	}
	return nil
}

func (r *promptRepository) UpdateTags(ctx context.Context, id uint, tags string) error {
	res := r.db.WithContext(ctx).Model(&models.Prompt{}).
		Where("id = ?", id).
		Update("tags", tags)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storeerr.NotFound("prompt %d", id)
	}
	return nil
}

func (r *promptRepository) Delete(ctx context.Context, id uint) (int64, error) {
	var resultsDeleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("prompt_id = ?", id).Delete(&models.Result{})
		if res.Error != nil {
			return res.Error
		}
		resultsDeleted = res.RowsAffected

		res = tx.Delete(&models.Prompt{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return storeerr.NotFound("prompt %d", id)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return resultsDeleted, nil
}
