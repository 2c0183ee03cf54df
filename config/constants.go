package config

import "time"

// Application constants
const (
	// Network configuration
	ReadTimeout  = 30 * time.Second
	WriteTimeout = 10 * time.Minute // large fixture downloads stream slowly over WAN links
	IdleTimeout  = 120 * time.Second

	// Graceful shutdown deadline after SIGINT/SIGTERM
	ShutdownTimeout = 5 * time.Second

	// Catalog configuration
	CatalogRescanInterval = 5 * time.Minute
	FileStabilityDelay    = 100 * time.Millisecond
)

// HDF5ContentType is the media type served for HDF5-family fixture files.
const HDF5ContentType = "application/x-hdf5"

// HDF5Extensions lists the file extensions mapped to HDF5ContentType.
func HDF5Extensions() []string {
	return []string{".h5ad", ".hdf5", ".h5"}
}
