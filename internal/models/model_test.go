package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelDisplayName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"openai/gpt-4", "GPT 4"},
		{"anthropic/claude-3-opus", "Claude 3 Opus"},
		{"deepseek-chat", "Deepseek Chat"},
		{"gemini-1.5-pro", "Gemini 1.5 Pro"},
		{"plain", "Plain"},
	}
	for _, tc := range cases {
		m := Model{Name: tc.name}
		assert.Equal(t, tc.want, m.DisplayName(), "name %q", tc.name)
	}
}
