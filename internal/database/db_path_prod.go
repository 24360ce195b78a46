//go:build prod

package database

import (
	"os"
	"path/filepath"
)

// GetDefaultDBPath returns the database path for production mode.
// In production, the database is stored in the user's config directory.
func GetDefaultDBPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "chatlist.db"
	}

	appDir := filepath.Join(configDir, "chatlist")

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "chatlist.db"
	}

	return filepath.Join(appDir, "chatlist.db")
}

func IsDevelopment() bool {
	return false
}
