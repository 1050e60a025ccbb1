// ABOUTME: Tests for JSON persistence of the mapping collection
// ABOUTME: Covers round trips, corrupt-file fallback and migrate-on-load

package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/modelmap/internal/mapping"
	"github.com/mauromedda/modelmap/internal/migrate"
)

func testFile(t *testing.T) *File {
	t.Helper()
	return NewFile(filepath.Join(t.TempDir(), "mappings.json"))
}

func TestFile_SaveLoadRoundTrip(t *testing.T) {
	f := testFile(t)
	enabled := false
	in := []mapping.ModelMapping{
		{SourceModel: "claude-opus-4-6", Target: "gpt-5(high)"},
		{ID: "abc", SourceModel: "custom", Target: "gpt-5", Enabled: &enabled, Fork: true},
	}

	if err := f.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out := f.Load()
	if len(out) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(out))
	}
	if out[0].SourceModel != "claude-opus-4-6" || out[0].Target != "gpt-5(high)" {
		t.Errorf("first entry: %+v", out[0])
	}
	got := out[1]
	if got.ID != "abc" || got.Enabled == nil || *got.Enabled || !got.Fork {
		t.Errorf("second entry lost fields: %+v", got)
	}
}

func TestFile_LoadMissing(t *testing.T) {
	f := testFile(t)
	if out := f.Load(); out != nil {
		t.Errorf("missing file should load empty, got %+v", out)
	}
}

func TestFile_LoadCorrupt(t *testing.T) {
	f := testFile(t)
	if err := os.WriteFile(f.Path(), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if out := f.Load(); out != nil {
		t.Errorf("corrupt file should load empty, got %+v", out)
	}
}

func TestFile_SaveCreatesDirAndTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(filepath.Join(dir, "nested", "mappings.json"))

	if err := f.Save([]mapping.ModelMapping{{SourceModel: "a", Target: "b"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(f.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("file should end with a newline")
	}
	if !strings.Contains(string(data), `"version": 1`) {
		t.Errorf("missing version field:\n%s", data)
	}
	if strings.Contains(string(data), `"enabled"`) {
		t.Error("nil enabled must be omitted from the output")
	}
}

func TestFile_LoadAndMigratePersistsBack(t *testing.T) {
	f := testFile(t)
	if err := f.Save([]mapping.ModelMapping{
		{SourceModel: "claude-opus-4-5-20251101", Target: "gpt-5(high)"},
	}); err != nil {
		t.Fatal(err)
	}

	rules := []migrate.Rule{{From: "claude-opus-4-5-20251101", To: "claude-opus-4-6"}}
	out, migrated := f.LoadAndMigrate(rules, []string{"claude-opus-4-6"})
	if !migrated {
		t.Fatal("expected migration")
	}
	if out[0].SourceModel != "claude-opus-4-6" {
		t.Errorf("unexpected key: %+v", out[0])
	}

	// The rewrite is persisted, so a fresh load sees the new key.
	reloaded := f.Load()
	if len(reloaded) != 1 || reloaded[0].SourceModel != "claude-opus-4-6" {
		t.Errorf("migration not persisted: %+v", reloaded)
	}

	// And a second pass is a no-op.
	if _, migrated := f.LoadAndMigrate(rules, []string{"claude-opus-4-6"}); migrated {
		t.Error("second LoadAndMigrate should not migrate again")
	}
}

func TestFile_DefaultPath(t *testing.T) {
	f := NewFile("")
	if f.Path() == "" {
		t.Fatal("empty path should resolve to the default location")
	}
	if filepath.Base(f.Path()) != "mappings.json" {
		t.Errorf("unexpected default file name: %s", f.Path())
	}
}
