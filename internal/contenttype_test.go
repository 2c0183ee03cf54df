package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTypeFor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("hdf5_family", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"x.h5ad", "x.hdf5", "x.h5", "X.H5AD"} {
			assert.Equal(t, "application/x-hdf5", ContentTypeFor(name), name)
		}
	})

	t.Run("known_extension", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, ContentTypeFor("notes.txt"), "text/plain")
		assert.Contains(t, ContentTypeFor("page.html"), "text/html")
	})

	t.Run("unknown_extension_sniffed", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "blob.fixture")
		require.NoError(t, os.WriteFile(path, []byte("plain text payload\n"), 0o644))
		assert.Contains(t, ContentTypeFor(path), "text/plain")
	})

	t.Run("unknown_extension_missing_file", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "application/octet-stream", ContentTypeFor(filepath.Join(dir, "gone.fixture")))
	})
}
