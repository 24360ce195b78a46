package models

import "time"

// Prompt is a unit of user-authored input text, optionally tagged.
// Tags are an opaque string; any comma-separated structure is the
// front-end's concern.
type Prompt struct {
	ID   uint      `gorm:"primaryKey"`
	Date time.Time `gorm:"not null;index:idx_prompts_date"`
	Text string    `gorm:"column:prompt;type:text;not null"`
	Tags string    `gorm:"index:idx_prompts_tags"`
}
