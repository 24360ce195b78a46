package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chatlist/internal/models"
	"chatlist/internal/storeerr"
)

type ModelRepository interface {
	Create(ctx context.Context, m *models.Model) error
	FindByID(ctx context.Context, id uint) (*models.Model, error)
	FindByName(ctx context.Context, name string) (*models.Model, error)
	List(ctx context.Context, activeOnly bool) ([]models.Model, error)
	Search(ctx context.Context, query string) ([]models.Model, error)
	Update(ctx context.Context, m *models.Model) error
	SetActive(ctx context.Context, id uint, active bool) error
	// Delete refuses to remove a model that results still reference.
	Delete(ctx context.Context, id uint) error
}

type modelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) ModelRepository {
	return &modelRepository{db: db}
}

func (r *modelRepository) Create(ctx context.Context, m *models.Model) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Model{}).Where("name = ?", m.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return storeerr.Conflict("model name %q", m.Name)
		}
		return tx.Create(m).Error
	})
}

func (r *modelRepository) FindByID(ctx context.Context, id uint) (*models.Model, error) {
	var m models.Model
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storeerr.NotFound("model %d", id)
		}
		return nil, err
	}
	return &m, nil
}

func (r *modelRepository) FindByName(ctx context.Context, name string) (*models.Model, error) {
	var m models.Model
	if err := r.db.WithContext(ctx).Where("name = ?", name).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storeerr.NotFound("model %q", name)
		}
		return nil, err
	}
	return &m, nil
}

func (r *modelRepository) List(ctx context.Context, activeOnly bool) ([]models.Model, error) {
	var list []models.Model
	q := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *modelRepository) Search(ctx context.Context, query string) ([]models.Model, error) {
	var list []models.Model
	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Order("name").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *modelRepository) Update(ctx context.Context, m *models.Model) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Model{}).
			Where("name = ? AND id <> ?", m.Name, m.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return storeerr.Conflict("model name %q", m.Name)
		}
		res := tx.Model(&models.Model{}).Where("id = ?", m.ID).
			Updates(map[string]any{
				"name":       m.Name,
				"api_url":    m.APIURL,
				"secret_ref": m.SecretRef,
				"model_type": m.ModelType,
				"is_active":  m.IsActive,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return storeerr.NotFound("model %d", m.ID)
		}
		return nil
	})
}

func (r *modelRepository) SetActive(ctx context.Context, id uint, active bool) error {
	res := r.db.WithContext(ctx).Model(&models.Model{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return storeerr.NotFound("model %d", id)
	}
	return nil
}

func (r *modelRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&models.Result{}).Where("model_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return storeerr.Constraint("model %d has %d saved results", id, refs)
		}
		res := tx.Delete(&models.Model{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return storeerr.NotFound("model %d", id)
		}
		return nil
	})
}
