package repo_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/repo"
)

func newFileRepo(t *testing.T) (repo.ItineraryRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	return repo.NewFileItineraryRepo(path), path
}

func TestFileItineraryRepo_LoadMissingFile(t *testing.T) {
	r, _ := newFileRepo(t)

	_, err := r.Load(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileItineraryRepo_SaveThenLoad(t *testing.T) {
	r, _ := newFileRepo(t)
	ctx := context.Background()

	input := itineraryFixture()
	require.NoError(t, r.Save(ctx, input))

	got, err := r.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, input.TripMeta, got.TripMeta)
	assert.Equal(t, input.Days, got.Days)
}

func TestFileItineraryRepo_CorruptFileReportsNotFound(t *testing.T) {
	r, path := newFileRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := r.Load(context.Background())

	// Corrupt is treated like missing so the service reseeds.
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFileItineraryRepo_SaveOverwrites(t *testing.T) {
	r, path := newFileRepo(t)
	ctx := context.Background()

	first := itineraryFixture()
	require.NoError(t, r.Save(ctx, first))

	second := itineraryFixture()
	second.TripMeta.Title = "second write"
	require.NoError(t, r.Save(ctx, second))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second write", got.TripMeta.Title)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileItineraryRepo_SaveFailsOnMissingDirectory(t *testing.T) {
	r := repo.NewFileItineraryRepo(filepath.Join(t.TempDir(), "nope", "db.json"))

	err := r.Save(context.Background(), itineraryFixture())

	assert.Error(t, err)
}
