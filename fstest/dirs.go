package fstest

import (
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fsutil"
)

// TestDirs tests directory creation and listing.
func TestDirs(t *testing.T, filesystem fsutil.Filesystem) {
	t.Run("MkdirAll", func(t *testing.T) {
		testMkdirAll(t, filesystem)
	})
	t.Run("ReadDir", func(t *testing.T) {
		testReadDir(t, filesystem)
	})
}

func testMkdirAll(t *testing.T, filesystem fsutil.Filesystem) {
	if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
		t.Fatalf("MkdirAll: got error %v, want nil", err)
	}

	for _, p := range []string{"a", "a/b", "a/b/c"} {
		info, err := filesystem.Stat(p)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", p, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): not a directory", p)
		}
	}

	// Repeating on an existing chain must not fail.
	if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
		t.Errorf("MkdirAll: repeat on existing chain: got error %v, want nil", err)
	}
}

func testReadDir(t *testing.T, filesystem fsutil.Filesystem) {
	if err := filesystem.MkdirAll("listing", 0o755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}
	for _, name := range []string{"listing/one.txt", "listing/two.txt"} {
		if err := filesystem.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
	}

	entries, err := filesystem.ReadDir("listing")
	if err != nil {
		t.Fatalf("ReadDir: got error %v, want nil", err)
	}
	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}
	if len(names) != 2 || !names["one.txt"] || !names["two.txt"] {
		t.Errorf("ReadDir: got %v, want {one.txt, two.txt}", names)
	}
}
