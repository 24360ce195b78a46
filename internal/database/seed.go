package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chatlist/internal/models"
)

// SchemaVersion is written to the db_version setting on first run.
const SchemaVersion = "1.0"

// defaultModels are the example endpoints registered on first run, one per
// provider type. SecretRef names the env-var or keychain slot the invoker
// resolves on its own; the store never sees the key itself.
var defaultModels = []models.Model{
	{Name: "gpt-4o", APIURL: "https://api.openai.com/v1/chat/completions", SecretRef: "OPENAI_API_KEY", ModelType: "openai", IsActive: true},
	{Name: "claude-3-5-sonnet", APIURL: "https://api.anthropic.com/v1/messages", SecretRef: "ANTHROPIC_API_KEY", ModelType: "anthropic", IsActive: true},
	{Name: "gemini-1.5-pro", APIURL: "https://generativelanguage.googleapis.com/v1beta/chat/completions", SecretRef: "GEMINI_API_KEY", ModelType: "gemini", IsActive: true},
	{Name: "deepseek-chat", APIURL: "https://api.deepseek.com/v1/chat/completions", SecretRef: "DEEPSEEK_API_KEY", ModelType: "deepseek", IsActive: true},
	{Name: "openai/gpt-4", APIURL: "https://openrouter.ai/api/v1/chat/completions", SecretRef: "OPENROUTER_API_KEY", ModelType: "openrouter", IsActive: true},
}

var defaultSettings = []models.Setting{
	{Key: models.SettingDBVersion, Value: SchemaVersion},
	{Key: models.SettingTheme, Value: "light"},
	{Key: models.SettingDefaultExportFormat, Value: "markdown"},
	{Key: models.SettingAutoSavePrompts, Value: "false"},
}

// seed inserts the example models (only into an empty table, so user edits
// survive restarts) and the default settings (insert-if-absent per key).
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Model{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count models: %w", err)
	}
	if count == 0 {
		seedModels := make([]models.Model, len(defaultModels))
		copy(seedModels, defaultModels)
		if err := db.Create(&seedModels).Error; err != nil {
			return fmt.Errorf("seed models: %w", err)
		}
	}

	seedSettings := make([]models.Setting, len(defaultSettings))
	copy(seedSettings, defaultSettings)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&seedSettings).Error; err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	return nil
}
