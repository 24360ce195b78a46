// Package config assembles runtime configuration from the environment and an
// optional .env file. API keys are deliberately not read here: the store only
// carries secret_ref names, and resolving them belongs to the invoker.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"chatlist/internal/database"
)

type Config struct {
	// DBPath is the SQLite file location. Overridden by CHATLIST_DB.
	DBPath string
	// LogLevel is one of debug, info, warn, error. Overridden by
	// CHATLIST_LOG_LEVEL.
	LogLevel string
}

// Load reads .env (if present) and the CHATLIST_* environment variables,
// falling back to the build-mode default DB path.
func Load() Config {
	loadEnv()

	cfg := Config{
		DBPath:   database.GetDefaultDBPath(),
		LogLevel: "info",
	}
	if v := os.Getenv("CHATLIST_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CHATLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

func loadEnv() {
	root, err := findProjectRoot()
	if err != nil {
		_ = godotenv.Load()
		return
	}
	_ = godotenv.Load(filepath.Join(root, ".env"))
}

// findProjectRoot walks up from the working directory looking for go.mod,
// so dev runs pick up the repo-level .env.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}
