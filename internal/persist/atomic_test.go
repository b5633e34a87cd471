package persist

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestWriteFileAtomicCreatesParents(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/data", "scripts", "scripts.json")
	if err := WriteFileAtomic(fs, path, []byte("one"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "one" {
		t.Fatalf("expected content %q, got %q", "one", got)
	}
}

func TestWriteFileAtomicOverwritesAndCleansUp(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/data", "config.yaml")
	if err := WriteFileAtomic(fs, path, []byte("first"), 0o600); err != nil {
		t.Fatalf("write first: %v", err)
	}
	if err := WriteFileAtomic(fs, path, []byte("second"), 0o600); err != nil {
		t.Fatalf("write second: %v", err)
	}
	got, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected overwritten content, got %q", got)
	}
	entries, err := afero.ReadDir(fs, "/data")
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		t.Fatalf("expected only the target file, got %v", names)
	}
}

func TestWriteFileAtomicOnDisk(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()
	path := filepath.Join(dir, "nested", "state.json")
	if err := WriteFileAtomic(fs, path, []byte("{}"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	info, err := fs.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected mode 0600, got %o", perm)
	}
}
