package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRescan(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.bin"), make([]byte, 100), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "a.h5ad"), make([]byte, 200), 0o644))

	c := NewCatalog(root)
	require.NoError(t, c.Rescan())

	snap := c.Snapshot()
	require.Len(t, snap, 2)
	// Sorted by name, slash-separated relative paths.
	assert.Equal(t, "b.bin", snap[0].Name)
	assert.Equal(t, "sub/a.h5ad", snap[1].Name)
	assert.Equal(t, int64(100), snap[0].SizeBytes)
	assert.Equal(t, "application/x-hdf5", snap[1].ContentType)

	count, totalBytes, lastScan := c.Stats()
	assert.Equal(t, 2, count)
	assert.Equal(t, int64(300), totalBytes)
	assert.WithinDuration(t, time.Now(), lastScan, time.Minute)
}

func TestCatalogUpdate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	c := NewCatalog(root)
	require.NoError(t, c.Rescan())
	assert.Empty(t, c.Snapshot())

	path := filepath.Join(root, "new.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 50), 0o644))
	c.Update(path)

	snap := c.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "new.bin", snap[0].Name)
	assert.Equal(t, int64(50), snap[0].SizeBytes)

	// A grown file is re-stat'ed, not cached.
	require.NoError(t, os.WriteFile(path, make([]byte, 80), 0o644))
	c.Update(path)
	assert.Equal(t, int64(80), c.Snapshot()[0].SizeBytes)

	// Deletion drops the entry.
	require.NoError(t, os.Remove(path))
	c.Update(path)
	assert.Empty(t, c.Snapshot())
}

func TestCatalogIgnoresDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "only", "dirs"), 0o755))

	c := NewCatalog(root)
	require.NoError(t, c.Rescan())
	assert.Empty(t, c.Snapshot())

	c.Update(filepath.Join(root, "only"))
	assert.Empty(t, c.Snapshot())
}

func TestWatcherKeepsCatalogFresh(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	c := NewCatalog(root)
	require.NoError(t, c.Rescan())

	fw, err := NewFixtureWatcher(c, root)
	require.NoError(t, err)
	require.NoError(t, fw.Start())
	defer fw.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(root, "arrived.bin"), make([]byte, 10), 0o644))

	assert.Eventually(t, func() bool {
		snap := c.Snapshot()
		return len(snap) == 1 && snap[0].Name == "arrived.bin"
	}, 5*time.Second, 20*time.Millisecond)

	stats := fw.HealthStats()
	assert.Equal(t, root, stats["root"])
}
