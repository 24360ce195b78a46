package services

import (
	"context"
	"time"

	"chatlist/internal/models"
	"chatlist/internal/repositories"
)

type promptRepositoryMock struct {
	CreateFunc     func(ctx context.Context, p *models.Prompt) error
	FindByIDFunc   func(ctx context.Context, id uint) (*models.Prompt, error)
	ListFunc       func(ctx context.Context, filter repositories.PromptFilter) ([]models.Prompt, error)
	SearchFunc     func(ctx context.Context, query string) ([]models.Prompt, error)
	UpdateFunc     func(ctx context.Context, id uint, text, tags string) error
	UpdateTagsFunc func(ctx context.Context, id uint, tags string) error
	DeleteFunc     func(ctx context.Context, id uint) (int64, error)
}

func (m *promptRepositoryMock) Create(ctx context.Context, p *models.Prompt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *promptRepositoryMock) FindByID(ctx context.Context, id uint) (*models.Prompt, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &models.Prompt{ID: id, Date: time.Now()}, nil
}

func (m *promptRepositoryMock) List(ctx context.Context, filter repositories.PromptFilter) ([]models.Prompt, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *promptRepositoryMock) Search(ctx context.Context, query string) ([]models.Prompt, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}

func (m *promptRepositoryMock) Update(ctx context.Context, id uint, text, tags string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, text, tags)
	}
	return nil
}

func (m *promptRepositoryMock) UpdateTags(ctx context.Context, id uint, tags string) error {
	if m.UpdateTagsFunc != nil {
		return m.UpdateTagsFunc(ctx, id, tags)
	}
	return nil
}

func (m *promptRepositoryMock) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, nil
}

type modelRepositoryMock struct {
	CreateFunc     func(ctx context.Context, m *models.Model) error
	FindByIDFunc   func(ctx context.Context, id uint) (*models.Model, error)
	FindByNameFunc func(ctx context.Context, name string) (*models.Model, error)
	ListFunc       func(ctx context.Context, activeOnly bool) ([]models.Model, error)
	SearchFunc     func(ctx context.Context, query string) ([]models.Model, error)
	UpdateFunc     func(ctx context.Context, m *models.Model) error
	SetActiveFunc  func(ctx context.Context, id uint, active bool) error
	DeleteFunc     func(ctx context.Context, id uint) error
}

func (m *modelRepositoryMock) Create(ctx context.Context, mdl *models.Model) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mdl)
	}
	return nil
}

func (m *modelRepositoryMock) FindByID(ctx context.Context, id uint) (*models.Model, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &models.Model{ID: id}, nil
}

func (m *modelRepositoryMock) FindByName(ctx context.Context, name string) (*models.Model, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return &models.Model{Name: name}, nil
}

func (m *modelRepositoryMock) List(ctx context.Context, activeOnly bool) ([]models.Model, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
}

func (m *modelRepositoryMock) Search(ctx context.Context, query string) ([]models.Model, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}

func (m *modelRepositoryMock) Update(ctx context.Context, mdl *models.Model) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mdl)
	}
	return nil
}

func (m *modelRepositoryMock) SetActive(ctx context.Context, id uint, active bool) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active)
	}
	return nil
}

func (m *modelRepositoryMock) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type resultRepositoryMock struct {
	CreateFunc         func(ctx context.Context, res *models.Result) error
	CreateBatchFunc    func(ctx context.Context, results []models.Result) error
	ListByPromptFunc   func(ctx context.Context, promptID uint) ([]models.ResultWithModel, error)
	ListAllFunc        func(ctx context.Context) ([]models.ResultDetail, error)
	SearchFunc         func(ctx context.Context, query string) ([]models.ResultDetail, error)
	DeleteFunc         func(ctx context.Context, id uint) error
	DeleteByPromptFunc func(ctx context.Context, promptID uint) (int64, error)
}

func (m *resultRepositoryMock) Create(ctx context.Context, res *models.Result) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, res)
	}
	return nil
}

func (m *resultRepositoryMock) CreateBatch(ctx context.Context, results []models.Result) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, results)
	}
	return nil
}

func (m *resultRepositoryMock) ListByPrompt(ctx context.Context, promptID uint) ([]models.ResultWithModel, error) {
	if m.ListByPromptFunc != nil {
		return m.ListByPromptFunc(ctx, promptID)
	}
	return nil, nil
}

func (m *resultRepositoryMock) ListAll(ctx context.Context) ([]models.ResultDetail, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *resultRepositoryMock) Search(ctx context.Context, query string) ([]models.ResultDetail, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, nil
}

func (m *resultRepositoryMock) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *resultRepositoryMock) DeleteByPrompt(ctx context.Context, promptID uint) (int64, error) {
	if m.DeleteByPromptFunc != nil {
		return m.DeleteByPromptFunc(ctx, promptID)
	}
	return 0, nil
}

type settingRepositoryMock struct {
	GetFunc func(ctx context.Context, key string) (string, bool, error)
	SetFunc func(ctx context.Context, key, value string) error
	AllFunc func(ctx context.Context) (map[string]string, error)
}

func (m *settingRepositoryMock) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", false, nil
}

func (m *settingRepositoryMock) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	return nil
}

func (m *settingRepositoryMock) All(ctx context.Context) (map[string]string, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return map[string]string{}, nil
}
