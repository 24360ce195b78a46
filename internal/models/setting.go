package models

// Setting is a single named application-configuration value, upserted by key.
// Value is an opaque string; typed access over the known keys lives in the
// settings service.
type Setting struct {
	ID    uint   `gorm:"primaryKey"`
	Key   string `gorm:"size:255;not null;uniqueIndex:idx_settings_key"`
	Value string
}

// Keys seeded on first initialization and recognized by the typed accessors.
const (
	SettingDBVersion           = "db_version"
	SettingTheme               = "theme"
	SettingDefaultExportFormat = "default_export_format"
	SettingAutoSavePrompts     = "auto_save_prompts"
)
