package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatlist/internal/models"
	"chatlist/internal/storeerr"
)

func TestModelRepository_CreateDuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewModelRepository(db)
	ctx := context.Background()

	original := &models.Model{Name: "my-model", APIURL: "https://a.example", SecretRef: "A_API_KEY", IsActive: true}
	require.NoError(t, repo.Create(ctx, original))

	dup := &models.Model{Name: "my-model", APIURL: "https://b.example", SecretRef: "B_API_KEY", IsActive: true}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, storeerr.ErrConflict)

	// original row untouched
	got, err := repo.FindByName(ctx, "my-model")
	require.NoError(t, err)
	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, "https://a.example", got.APIURL)
}

func TestModelRepository_FindByName_Missing(t *testing.T) {
	db := newTestDB(t)
	repo := NewModelRepository(db)

	_, err := repo.FindByName(context.Background(), "no-such-model")
	assert.ErrorIs(t, err, storeerr.ErrNotFound)
}

func TestModelRepository_ListActiveOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewModelRepository(db)
	ctx := context.Background()

	inactive := &models.Model{Name: "dormant", APIURL: "https://x.example", SecretRef: "X_API_KEY", IsActive: false}
	require.NoError(t, repo.Create(ctx, inactive))

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	active, err := repo.List(ctx, true)
	require.NoError(t, err)

	assert.Len(t, all, len(active)+1)
	for _, m := range active {
		assert.True(t, m.IsActive)
		assert.NotEqual(t, "dormant", m.Name)
	}
}

func TestModelRepository_SetActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewModelRepository(db)
	ctx := context.Background()

	m := seededModel(t, db)
	require.True(t, m.IsActive)

	require.NoError(t, repo.SetActive(ctx, m.ID, false))
	got, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	assert.ErrorIs(t, repo.SetActive(ctx, 9999, true), storeerr.ErrNotFound)
}

func TestModelRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewModelRepository(db)
	ctx := context.Background()

	m := &models.Model{Name: "editable", APIURL: "https://old.example", SecretRef: "OLD_API_KEY", ModelType: "openai", IsActive: true}
	require.NoError(t, repo.Create(ctx, m))

	m.APIURL = "https://new.example"
	m.SecretRef = "NEW_API_KEY"
	m.IsActive = false
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://new.example", got.APIURL)
	assert.Equal(t, "NEW_API_KEY", got.SecretRef)
	assert.False(t, got.IsActive)
}

func TestModelRepository_UpdateToTakenName(t *testing.T) {
	db := newTestDB(t)
	repo := NewModelRepository(db)
	ctx := context.Background()

	taken := seededModel(t, db)
	m := &models.Model{Name: "renameme", APIURL: "https://x.example", SecretRef: "X_API_KEY", IsActive: true}
	require.NoError(t, repo.Create(ctx, m))

	m.Name = taken.Name
	assert.ErrorIs(t, repo.Update(ctx, m), storeerr.ErrConflict)
}

func TestModelRepository_DeleteRestrictedByResults(t *testing.T) {
	db := newTestDB(t)
	modelsRepo := NewModelRepository(db)
	promptsRepo := NewPromptRepository(db)
	resultsRepo := NewResultRepository(db)
	ctx := context.Background()

	m := seededModel(t, db)
	p := &models.Prompt{Date: time.Now(), Text: "q"}
	require.NoError(t, promptsRepo.Create(ctx, p))
	require.NoError(t, resultsRepo.Create(ctx, &models.Result{
		PromptID: p.ID, ModelID: m.ID, ResponseText: "a", SavedAt: time.Now(),
	}))

	err := modelsRepo.Delete(ctx, m.ID)
	assert.ErrorIs(t, err, storeerr.ErrConstraint)

	// model and its results stay intact
	_, err = modelsRepo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	rows, err := resultsRepo.ListByPrompt(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestModelRepository_DeleteUnreferenced(t *testing.T) {
	db := newTestDB(t)
	repo := NewModelRepository(db)
	ctx := context.Background()

	m := &models.Model{Name: "deleteme", APIURL: "https://x.example", SecretRef: "X_API_KEY", IsActive: true}
	require.NoError(t, repo.Create(ctx, m))

	require.NoError(t, repo.Delete(ctx, m.ID))
	_, err := repo.FindByID(ctx, m.ID)
	assert.ErrorIs(t, err, storeerr.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, m.ID), storeerr.ErrNotFound)
}

func TestModelRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewModelRepository(db)
	ctx := context.Background()

	found, err := repo.Search(ctx, "claude")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	for _, m := range found {
		assert.Contains(t, m.Name, "claude")
	}
}
