package services

import (
	"context"
	"strconv"
	"strings"

	"chatlist/internal/models"
	"chatlist/internal/repositories"
	"chatlist/internal/storeerr"
)

// Export formats stored in the default_export_format setting.
const (
	ExportFormatMarkdown = "markdown"
	ExportFormatJSON     = "json"
)

// SettingsService exposes the raw key/value pair plus typed accessors over
// the known settings keys. Unknown keys fall back to the opaque Get/Set pair.
type SettingsService interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)

	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
	DefaultExportFormat(ctx context.Context) (string, error)
	SetDefaultExportFormat(ctx context.Context, format string) error
	AutoSavePrompts(ctx context.Context) (bool, error)
	SetAutoSavePrompts(ctx context.Context, enabled bool) error
	DBVersion(ctx context.Context) (string, error)
}

type settingsService struct {
	settings repositories.SettingRepository
}

func NewSettingsService(settings repositories.SettingRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context, key string) (string, bool, error) {
	if strings.TrimSpace(key) == "" {
		return "", false, storeerr.Validation("setting key is required")
	}
	return s.settings.Get(ctx, key)
}

func (s *settingsService) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return storeerr.Validation("setting key is required")
	}
	return s.settings.Set(ctx, key, value)
}

func (s *settingsService) All(ctx context.Context) (map[string]string, error) {
	return s.settings.All(ctx)
}

func (s *settingsService) getOrDefault(ctx context.Context, key, fallback string) (string, error) {
	value, ok, err := s.settings.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}
	return value, nil
}

func (s *settingsService) Theme(ctx context.Context) (string, error) {
	return s.getOrDefault(ctx, models.SettingTheme, "light")
}

func (s *settingsService) SetTheme(ctx context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return storeerr.Validation("theme must be 'light' or 'dark'")
	}
	return s.settings.Set(ctx, models.SettingTheme, theme)
}

func (s *settingsService) DefaultExportFormat(ctx context.Context) (string, error) {
	return s.getOrDefault(ctx, models.SettingDefaultExportFormat, ExportFormatMarkdown)
}

func (s *settingsService) SetDefaultExportFormat(ctx context.Context, format string) error {
	if format != ExportFormatMarkdown && format != ExportFormatJSON {
		return storeerr.Validation("export format must be 'markdown' or 'json'")
	}
	return s.settings.Set(ctx, models.SettingDefaultExportFormat, format)
}

func (s *settingsService) AutoSavePrompts(ctx context.Context) (bool, error) {
	value, err := s.getOrDefault(ctx, models.SettingAutoSavePrompts, "false")
	if err != nil {
		return false, err
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, storeerr.Validation("auto_save_prompts holds %q, want a boolean", value)
	}
	return enabled, nil
}

func (s *settingsService) SetAutoSavePrompts(ctx context.Context, enabled bool) error {
	return s.settings.Set(ctx, models.SettingAutoSavePrompts, strconv.FormatBool(enabled))
}

func (s *settingsService) DBVersion(ctx context.Context) (string, error) {
	return s.getOrDefault(ctx, models.SettingDBVersion, "")
}
