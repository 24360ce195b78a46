package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chatlist/internal/repositories"
)

// DbServices aggregates all domain services backed by the database.
// Fields use plural names (e.g., Prompts) to align with Go conventions
// seen in service/store containers.
type DbServices struct {
	Prompts  PromptService
	Models   ModelService
	Results  ResultService
	Settings SettingsService
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB, log *zap.Logger) *DbServices {
	if log == nil {
		log = zap.NewNop()
	}

	promptRepo := repositories.NewPromptRepository(db)
	modelRepo := repositories.NewModelRepository(db)
	resultRepo := repositories.NewResultRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	return &DbServices{
		Prompts:  NewPromptService(promptRepo, log),
		Models:   NewModelService(modelRepo, log),
		Results:  NewResultService(resultRepo, log),
		Settings: NewSettingsService(settingRepo),
	}
}
