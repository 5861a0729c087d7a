package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"reclaim/internal/config"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverFiltersBySize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "big.bin"), 4096)
	writeFile(t, filepath.Join(dir, "small.bin"), 10)
	writeFile(t, filepath.Join(dir, "nested", "also-big.bin"), 5000)

	sources := New(nil).Discover([]config.Location{{Label: "Test", Path: dir}}, 4096)

	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(sources))
	}
	if sources[0].Label != "Test" {
		t.Fatalf("label = %q", sources[0].Label)
	}
	if len(sources[0].Paths) != 2 {
		t.Fatalf("expected 2 paths, got %v", sources[0].Paths)
	}
	for _, p := range sources[0].Paths {
		if filepath.Base(p) == "small.bin" {
			t.Fatalf("undersized file discovered: %s", p)
		}
	}
}

func TestDiscoverMissingLocation(t *testing.T) {
	sources := New(nil).Discover([]config.Location{
		{Label: "Ghost", Path: filepath.Join(t.TempDir(), "does-not-exist")},
	}, 1)

	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(sources))
	}
	if len(sources[0].Paths) != 0 {
		t.Fatalf("missing location produced paths: %v", sources[0].Paths)
	}
}

func TestDiscoverPreservesLocationOrder(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(a, "a.bin"), 100)
	writeFile(t, filepath.Join(b, "b.bin"), 100)

	sources := New(nil).Discover([]config.Location{
		{Label: "First", Path: a},
		{Label: "Second", Path: b},
	}, 1)

	if sources[0].Label != "First" || sources[1].Label != "Second" {
		t.Fatalf("location order not preserved: %s, %s", sources[0].Label, sources[1].Label)
	}
}

func TestDiscoverSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "f.bin"), 100)

	sources := New(nil).Discover([]config.Location{{Label: "T", Path: dir}}, 1)
	if len(sources[0].Paths) != 1 {
		t.Fatalf("expected only the regular file, got %v", sources[0].Paths)
	}
}
