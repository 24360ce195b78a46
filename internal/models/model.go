package models

import (
	"strings"
	"time"
)

// Model is a registered AI-provider endpoint. SecretRef is the name of an
// externally stored credential (an env-var or keychain slot), never the
// credential value itself.
type Model struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null;uniqueIndex:idx_models_name"`
	APIURL    string    `gorm:"column:api_url;size:512;not null"`
	SecretRef string    `gorm:"size:255;not null"`
	IsActive  bool      `gorm:"not null;default:true;index:idx_models_is_active"`
	ModelType string    `gorm:"size:50"`
	CreatedAt time.Time `gorm:"not null"`
}

// DisplayName turns an API model name like "openai/gpt-4" into something
// readable for list views.
func (m Model) DisplayName() string {
	name := m.Name
	if idx := strings.IndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" {
		return m.Name
	}
	words := strings.Split(name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		if strings.EqualFold(w, "gpt") {
			words[i] = "GPT"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
