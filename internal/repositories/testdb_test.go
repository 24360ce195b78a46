package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"chatlist/internal/database"
	"chatlist/internal/models"
)

// newTestDB opens a fully migrated and seeded store in a temp directory.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Init(database.Config{
		Path: filepath.Join(t.TempDir(), "chatlist.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// seededModel returns one of the example models Init registers on first run.
func seededModel(t *testing.T, db *gorm.DB) models.Model {
	t.Helper()
	var m models.Model
	require.NoError(t, db.Order("id").First(&m).Error)
	return m
}
