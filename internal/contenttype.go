package internal

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/honicky/anndata-duckdb-extension/config"
)

// ContentTypeFor guesses the media type for a fixture file. HDF5-family
// extensions take priority so that .h5ad files are not misreported by the
// generic tables, then the stdlib extension table, then content sniffing for
// files with unknown extensions.
func ContentTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, h5 := range config.HDF5Extensions() {
		if ext == h5 {
			return config.HDF5ContentType
		}
	}

	if byExt := mime.TypeByExtension(ext); byExt != "" {
		return byExt
	}

	// Unknown extension: sniff the leading bytes. Errors fall through to
	// the generic default rather than failing the request.
	if detected, err := mimetype.DetectFile(path); err == nil {
		return detected.String()
	}
	return "application/octet-stream"
}
