package models

import "time"

// Result is a saved model response to a prompt. TokensUsed and ResponseTime
// are optional metrics reported by the invoker; nil means not recorded.
// ResponseTime is in seconds.
type Result struct {
	ID           uint      `gorm:"primaryKey"`
	PromptID     uint      `gorm:"not null;index:idx_results_prompt_id"`
	ModelID      uint      `gorm:"not null;index:idx_results_model_id"`
	ResponseText string    `gorm:"type:text;not null"`
	SavedAt      time.Time `gorm:"not null;index:idx_results_saved_at"`
	TokensUsed   *int
	ResponseTime *float64
}

// ResultWithModel is the read shape for per-prompt result lists: the result
// row joined with the owning model's name.
type ResultWithModel struct {
	Result
	ModelName string
}

// ResultDetail additionally carries the prompt text, for global result lists
// and search.
type ResultDetail struct {
	Result
	ModelName  string
	PromptText string
}
