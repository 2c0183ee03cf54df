package internal

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/honicky/anndata-duckdb-extension/config"
)

// hdf5Signature is the 8-byte magic at the start of every HDF5 file.
var hdf5Signature = []byte{0x89, 'H', 'D', 'F', '\r', '\n', 0x1a, '\n'}

// PatternByte returns the byte stored at the given offset of a generated
// fixture blob. The modulus is prime so that slice boundaries never line up
// with the pattern period, which makes off-by-one range bugs visible in
// tests.
func PatternByte(offset int64) byte {
	return byte(offset % 251)
}

// WriteFixture writes a deterministic blob of exactly size bytes to path,
// creating parent directories as needed. Files with an HDF5-family extension
// get the HDF5 signature as their first eight bytes so that content sniffers
// and header checks treat them as real HDF5; the rest of the blob is the
// deterministic pattern.
func WriteFixture(path string, size int64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	var offset int64

	if isHDF5Name(path) && size >= int64(len(hdf5Signature)) {
		if _, err := w.Write(hdf5Signature); err != nil {
			return err
		}
		offset = int64(len(hdf5Signature))
	}

	for ; offset < size; offset++ {
		if err := w.WriteByte(PatternByte(offset)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func isHDF5Name(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, h5 := range config.HDF5Extensions() {
		if ext == h5 {
			return true
		}
	}
	return false
}
