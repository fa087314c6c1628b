package repo_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/repo"
)

func TestFileSlotRepo(t *testing.T) {
	r, err := repo.NewFileSlotRepo(t.TempDir())
	require.NoError(t, err)
	runSlotRepoContract(t, r)
}

func TestFileSlotRepo_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	r, err := repo.NewFileSlotRepo(dir)
	require.NoError(t, err)
	require.NoError(t, r.Put(context.Background(), "savedTrips", []byte(`[]`)))

	data, err := os.ReadFile(filepath.Join(dir, "savedTrips.json"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

// TestFileSlotRepo_NoTempFilesLeft verifies Put cleans up after the rename.
func TestFileSlotRepo_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	r, err := repo.NewFileSlotRepo(dir)
	require.NoError(t, err)

	for range 3 {
		require.NoError(t, r.Put(context.Background(), "savedTrips", []byte(`[]`)))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "savedTrips.json", entries[0].Name())
}

func TestFileSlotRepo_CanceledContext(t *testing.T) {
	r, err := repo.NewFileSlotRepo(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, r.Put(ctx, "savedTrips", []byte(`[]`)), context.Canceled)
}
