// ABOUTME: JSON file persistence for the mapping collection
// ABOUTME: Atomic temp+rename writes; missing or corrupt file loads as empty

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mauromedda/modelmap/internal/log"
	"github.com/mauromedda/modelmap/internal/mapping"
	"github.com/mauromedda/modelmap/internal/migrate"
)

const fileVersion = 1

// fileFormat is the on-disk envelope. Version allows future format
// migrations; Mappings is the ordered collection the proxy also reads.
type fileFormat struct {
	Version  int                    `json:"version"`
	Mappings []mapping.ModelMapping `json:"mappings"`
}

// File persists the mapping collection to a single JSON file.
type File struct {
	path string
}

// NewFile creates a persistence handle for the given path. An empty path
// selects the default location under ~/.modelmap/.
func NewFile(path string) *File {
	if path == "" {
		path = MappingsFile()
	}
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the collection. A missing file yields an empty collection;
// unreadable or unparseable content is logged and also yields empty rather
// than failing startup, matching the proxy's own fallback behavior.
func (f *File) Load() []mapping.ModelMapping {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("reading %s: %v, starting empty", f.path, err)
		}
		return nil
	}

	var ff fileFormat
	if err := json.Unmarshal(data, &ff); err != nil {
		log.Warn("parsing %s: %v, starting empty", f.path, err)
		return nil
	}
	return ff.Mappings
}

// LoadAndMigrate loads the collection and opportunistically applies
// migration rules. When a rule rewrote a key the migrated collection is
// persisted back immediately so the rewrite happens once.
func (f *File) LoadAndMigrate(rules []migrate.Rule, activeSources []string) ([]mapping.ModelMapping, bool) {
	entries := f.Load()
	out, migrated := migrate.Migrate(entries, rules, activeSources)
	if migrated {
		if err := f.Save(out); err != nil {
			log.Warn("persisting migrated mappings: %v", err)
		}
	}
	return out, migrated
}

// Save writes the collection atomically: serialize, write a temp file in
// the same directory, then rename over the target so a crash never leaves
// a half-written file behind.
func (f *File) Save(entries []mapping.ModelMapping) error {
	dir := filepath.Dir(f.path)
	if err := EnsureDir(dir); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(fileFormat{Version: fileVersion, Mappings: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling mappings: %w", err)
	}
	data = append(data, '\n')

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	log.Debug("saved %d mappings to %s", len(entries), f.path)
	return nil
}
