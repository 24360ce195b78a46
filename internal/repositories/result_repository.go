package repositories

import (
	"context"

	"gorm.io/gorm"

	"chatlist/internal/models"
	"chatlist/internal/storeerr"
)

type ResultRepository interface {
	// Create verifies both foreign keys and inserts in one transaction.
	Create(ctx context.Context, res *models.Result) error
	// CreateBatch saves all rows or none.
	CreateBatch(ctx context.Context, results []models.Result) error
	ListByPrompt(ctx context.Context, promptID uint) ([]models.ResultWithModel, error)
	ListAll(ctx context.Context) ([]models.ResultDetail, error)
	Search(ctx context.Context, query string) ([]models.ResultDetail, error)
	Delete(ctx context.Context, id uint) error
	DeleteByPrompt(ctx context.Context, promptID uint) (int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func checkReferences(tx *gorm.DB, promptID, modelID uint) error {
	var count int64
	if err := tx.Model(&models.Prompt{}).Where("id = ?", promptID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return storeerr.NotFound("prompt %d", promptID)
	}
	if err := tx.Model(&models.Model{}).Where("id = ?", modelID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return storeerr.NotFound("model %d", modelID)
	}
	return nil
}

func (r *resultRepository) Create(ctx context.Context, res *models.Result) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, res.PromptID, res.ModelID); err != nil {
			return err
		}
		return tx.Create(res).Error
	})
}

func (r *resultRepository) CreateBatch(ctx context.Context, results []models.Result) error {
	if len(results) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range results {
			if err := checkReferences(tx, results[i].PromptID, results[i].ModelID); err != nil {
				return err
			}
			if err := tx.Create(&results[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *resultRepository) ListByPrompt(ctx context.Context, promptID uint) ([]models.ResultWithModel, error) {
	var rows []models.ResultWithModel
	if err := r.db.WithContext(ctx).
		Table("results").
		Select("results.*, models.name AS model_name").
		Joins("JOIN models ON models.id = results.model_id").
		Where("results.prompt_id = ?", promptID).
		Order("results.saved_at DESC, results.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *resultRepository) ListAll(ctx context.Context) ([]models.ResultDetail, error) {
	var rows []models.ResultDetail
	if err := r.db.WithContext(ctx).
		Table("results").
		Select("results.*, models.name AS model_name, prompts.prompt AS prompt_text").
		Joins("JOIN models ON models.id = results.model_id").
		Joins("JOIN prompts ON prompts.id = results.prompt_id").
		Order("results.saved_at DESC, results.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *resultRepository) Search(ctx context.Context, query string) ([]models.ResultDetail, error) {
	var rows []models.ResultDetail
	if err := r.db.WithContext(ctx).
		Table("results").
		Select("results.*, models.name AS model_name, prompts.prompt AS prompt_text").
		Joins("JOIN models ON models.id = results.model_id").
		Joins("JOIN prompts ON prompts.id = results.prompt_id").
		Where("results.response_text LIKE ?", "%"+query+"%").
		Order("results.saved_at DESC, results.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *resultRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Result{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storeerr.NotFound("result %d", id)
	}
	return nil
}

func (r *resultRepository) DeleteByPrompt(ctx context.Context, promptID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("prompt_id = ?", promptID).Delete(&models.Result{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
