package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/tender/internal/domain"
	"github.com/alexanderramin/tender/internal/testutil"
)

func TestDeckRepo_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := testutil.NewTestProject("Deck")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	repo := NewSQLiteDeckRepo(db)
	_, err := repo.Get(ctx, proj.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	cfg := domain.DefaultDeckConfig(proj.ID)
	cfg.Template = domain.TemplateBold
	cfg.Language = "fr"
	require.NoError(t, repo.Upsert(ctx, &cfg))

	got, err := repo.Get(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TemplateBold, got.Template)
	assert.Equal(t, domain.FormatPPTX, got.Format)
	assert.Equal(t, "fr", got.Language)
	assert.Equal(t, []string{"timeline"}, got.Excluded)
	assert.False(t, got.Generated())

	at := time.Date(2023, 10, 16, 9, 0, 0, 0, time.UTC)
	got.GeneratedAt = &at
	got.SlideCount = 15
	require.NoError(t, repo.Upsert(ctx, got))

	again, err := repo.Get(ctx, proj.ID)
	require.NoError(t, err)
	require.True(t, again.Generated())
	assert.True(t, at.Equal(*again.GeneratedAt))
	assert.Equal(t, 15, again.SlideCount)
}

func TestDeckRepo_RejectsUnknownTemplate(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	proj := testutil.NewTestProject("Deck")
	require.NoError(t, NewSQLiteProjectRepo(db).Create(ctx, proj))

	cfg := domain.DefaultDeckConfig(proj.ID)
	cfg.Template = "neon"
	assert.Error(t, NewSQLiteDeckRepo(db).Upsert(ctx, &cfg))
}
