package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"chatlist/internal/models"
	"chatlist/internal/repositories"
	"chatlist/internal/storeerr"
)

type ModelService interface {
	// Register adds a model endpoint. SecretRef names the external
	// credential slot (e.g. "OPENAI_API_KEY"); never the key itself.
	Register(ctx context.Context, name, apiURL, secretRef, modelType string, isActive bool) (*models.Model, error)
	Get(ctx context.Context, id uint) (*models.Model, error)
	GetByName(ctx context.Context, name string) (*models.Model, error)
	List(ctx context.Context, activeOnly bool) ([]models.Model, error)
	Search(ctx context.Context, query string) ([]models.Model, error)
	Update(ctx context.Context, id uint, name, apiURL, secretRef, modelType string, isActive bool) error
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

type modelService struct {
	models repositories.ModelRepository
	log    *zap.Logger
}

func NewModelService(repo repositories.ModelRepository, log *zap.Logger) ModelService {
	return &modelService{models: repo, log: log}
}

func validateModelFields(name, apiURL, secretRef string) error {
	if strings.TrimSpace(name) == "" {
		return storeerr.Validation("model name is required")
	}
	if strings.TrimSpace(apiURL) == "" {
		return storeerr.Validation("api url is required")
	}
	if strings.TrimSpace(secretRef) == "" {
		return storeerr.Validation("secret ref is required")
	}
	return nil
}

func (s *modelService) Register(ctx context.Context, name, apiURL, secretRef, modelType string, isActive bool) (*models.Model, error) {
	if err := validateModelFields(name, apiURL, secretRef); err != nil {
		return nil, err
	}
	m := &models.Model{
		Name:      name,
		APIURL:    apiURL,
		SecretRef: secretRef,
		ModelType: modelType,
		IsActive:  isActive,
	}
	if err := s.models.Create(ctx, m); err != nil {
		return nil, err
	}
	s.log.Info("model registered", zap.Uint("id", m.ID), zap.String("name", m.Name))
	return m, nil
}

func (s *modelService) Get(ctx context.Context, id uint) (*models.Model, error) {
	return s.models.FindByID(ctx, id)
}

func (s *modelService) GetByName(ctx context.Context, name string) (*models.Model, error) {
	return s.models.FindByName(ctx, name)
}

func (s *modelService) List(ctx context.Context, activeOnly bool) ([]models.Model, error) {
	return s.models.List(ctx, activeOnly)
}

func (s *modelService) Search(ctx context.Context, query string) ([]models.Model, error) {
	return s.models.Search(ctx, query)
}

func (s *modelService) Update(ctx context.Context, id uint, name, apiURL, secretRef, modelType string, isActive bool) error {
	if err := validateModelFields(name, apiURL, secretRef); err != nil {
		return err
	}
	return s.models.Update(ctx, &models.Model{
		ID:        id,
		Name:      name,
		APIURL:    apiURL,
		SecretRef: secretRef,
		ModelType: modelType,
		IsActive:  isActive,
	})
}

func (s *modelService) SetActive(ctx context.Context, id uint, active bool) error {
	return s.models.SetActive(ctx, id, active)
}

func (s *modelService) Delete(ctx context.Context, id uint) error {
	if err := s.models.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("model deleted", zap.Uint("id", id))
	return nil
}
