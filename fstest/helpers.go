package fstest

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fsutil"
)

// TestHelpers tests the fsutil helper operations against the filesystem:
// CopyToFile, RequireDirectory, Children.
func TestHelpers(t *testing.T, filesystem fsutil.Filesystem) {
	t.Run("CopyToFileNested", func(t *testing.T) {
		testCopyToFileNested(t, filesystem)
	})
	t.Run("CopyToFileOverwrite", func(t *testing.T) {
		testCopyToFileOverwrite(t, filesystem)
	})
	t.Run("RequireDirectory", func(t *testing.T) {
		testRequireDirectory(t, filesystem)
	})
	t.Run("Children", func(t *testing.T) {
		testChildren(t, filesystem)
	})
}

func testCopyToFileNested(t *testing.T, filesystem fsutil.Filesystem) {
	data := []byte("nested copy payload")
	dest := filepath.Join("deep", "deeper", "deepest", "payload.bin")

	n, err := fsutil.CopyToFile(filesystem, bytes.NewReader(data), dest)
	if err != nil {
		t.Fatalf("CopyToFile: got error %v, want nil", err)
	}
	if n != int64(len(data)) {
		t.Errorf("CopyToFile: copied %d bytes, want %d", n, len(data))
	}

	for _, dir := range []string{"deep", "deep/deeper", "deep/deeper/deepest"} {
		info, err := filesystem.Stat(dir)
		if err != nil {
			t.Fatalf("Stat(%q): got error %v, want nil", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): not a directory", dir)
		}
	}

	got, err := filesystem.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile: got error %v, want nil", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadFile: got %q, want %q", got, data)
	}
}

func testCopyToFileOverwrite(t *testing.T, filesystem fsutil.Filesystem) {
	if err := filesystem.WriteFile("overwrite.txt", []byte("previous, longer content"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}

	if _, err := fsutil.CopyToFile(filesystem, bytes.NewReader([]byte("new")), "overwrite.txt"); err != nil {
		t.Fatalf("CopyToFile: got error %v, want nil", err)
	}
	got, err := filesystem.ReadFile("overwrite.txt")
	if err != nil {
		t.Fatalf("ReadFile: got error %v, want nil", err)
	}
	if string(got) != "new" {
		t.Errorf("ReadFile: got %q, want %q (destination must be truncated)", got, "new")
	}
}

func testRequireDirectory(t *testing.T, filesystem fsutil.Filesystem) {
	// Missing path: the full chain is created.
	if err := fsutil.RequireDirectory(filesystem, "req/a/b"); err != nil {
		t.Fatalf("RequireDirectory: got error %v, want nil", err)
	}
	info, err := filesystem.Stat("req/a/b")
	if err != nil {
		t.Fatalf("Stat: got error %v, want nil", err)
	}
	if !info.IsDir() {
		t.Error("Stat: created path is not a directory")
	}

	// Existing directory: no-op.
	if err := fsutil.RequireDirectory(filesystem, "req/a/b"); err != nil {
		t.Errorf("RequireDirectory: existing directory: got error %v, want nil", err)
	}

	// Existing file: invalid argument.
	if err := filesystem.WriteFile("req/blocker", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}
	err = fsutil.RequireDirectory(filesystem, "req/blocker")
	if !errors.Is(err, fsutil.ErrExistsAsFile) {
		t.Errorf("RequireDirectory: got %v, want ErrExistsAsFile", err)
	}
	if !errors.Is(err, fsutil.ErrInvalidArgument) {
		t.Errorf("RequireDirectory: got %v, want ErrInvalidArgument category", err)
	}
}

func testChildren(t *testing.T, filesystem fsutil.Filesystem) {
	if err := filesystem.MkdirAll("kids", 0o755); err != nil {
		t.Fatalf("MkdirAll: setup failed: %v", err)
	}
	for _, name := range []string{"kids/x", "kids/y"} {
		if err := filesystem.WriteFile(name, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
		}
	}

	got := fsutil.Children(filesystem, "kids")
	seen := make(map[string]bool, len(got))
	for _, p := range got {
		seen[filepath.Base(p)] = true
	}
	if len(seen) != 2 || !seen["x"] || !seen["y"] {
		t.Errorf("Children: got %v, want {x, y}", got)
	}

	// A plain file yields itself.
	got = fsutil.Children(filesystem, "kids/x")
	if len(got) != 1 || got[0] != "kids/x" {
		t.Errorf("Children: got %v, want [kids/x]", got)
	}
}
