package internal

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Fixture describes one servable file under the serving root.
type Fixture struct {
	Name        string    `json:"name"` // slash-separated path relative to the root
	SizeBytes   int64     `json:"sizeBytes"`
	ModTime     time.Time `json:"modTime"`
	ContentType string    `json:"contentType"`
}

// Catalog maintains an in-memory inventory of the files under the serving
// root for the listing and stats endpoints. The serving path never consults
// it: every request stats the file independently, so the catalog being a few
// events behind the filesystem is harmless.
type Catalog struct {
	root   string
	logger *Logger

	mu       sync.RWMutex
	files    map[string]Fixture
	lastScan time.Time
}

// NewCatalog creates an empty catalog for the given root directory.
func NewCatalog(root string) *Catalog {
	return &Catalog{
		root:   root,
		logger: NewLogger(INFO, "[CATALOG]", os.Stdout),
		files:  make(map[string]Fixture),
	}
}

// Rescan walks the root and rebuilds the inventory from scratch. Unreadable
// entries are skipped, not fatal.
func (c *Catalog) Rescan() error {
	found := make(map[string]Fixture)
	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.logger.Warn("skipping %s: %v", path, err)
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return nil
		}
		name := filepath.ToSlash(rel)
		found[name] = Fixture{
			Name:        name,
			SizeBytes:   info.Size(),
			ModTime:     info.ModTime(),
			ContentType: ContentTypeFor(path),
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.files = found
	c.lastScan = time.Now()
	c.mu.Unlock()

	c.logger.Debug("rescan complete, %d fixtures", len(found))
	return nil
}

// Update re-stats a single file and upserts or removes its inventory entry.
// Called by the watcher on create/write/rename/remove events.
func (c *Catalog) Update(path string) {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return
	}
	name := filepath.ToSlash(rel)

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		c.mu.Lock()
		delete(c.files, name)
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.files[name] = Fixture{
		Name:        name,
		SizeBytes:   info.Size(),
		ModTime:     info.ModTime(),
		ContentType: ContentTypeFor(path),
	}
	c.mu.Unlock()
}

// Snapshot returns the inventory sorted by name.
func (c *Catalog) Snapshot() []Fixture {
	c.mu.RLock()
	out := make([]Fixture, 0, len(c.files))
	for _, f := range c.files {
		out = append(out, f)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Stats returns the fixture count, total byte size and last full-scan time.
func (c *Catalog) Stats() (count int, totalBytes int64, lastScan time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, f := range c.files {
		totalBytes += f.SizeBytes
	}
	return len(c.files), totalBytes, c.lastScan
}
