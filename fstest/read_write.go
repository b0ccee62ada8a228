package fstest

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fsutil"
)

// TestReadWrite tests the basic file cycle: Create, Write, Open, Read,
// ReadFile, WriteFile, Stat, Exists, Remove.
func TestReadWrite(t *testing.T, filesystem fsutil.Filesystem) {
	t.Run("CreateWriteRead", func(t *testing.T) {
		testCreateWriteRead(t, filesystem)
	})
	t.Run("WriteFileReadFile", func(t *testing.T) {
		testWriteFileReadFile(t, filesystem)
	})
	t.Run("OpenFileReadOnly", func(t *testing.T) {
		testOpenFileReadOnly(t, filesystem)
	})
	t.Run("Exists", func(t *testing.T) {
		testExists(t, filesystem)
	})
	t.Run("Remove", func(t *testing.T) {
		testRemove(t, filesystem)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		testOpenNotExist(t, filesystem)
	})
}

func testCreateWriteRead(t *testing.T, filesystem fsutil.Filesystem) {
	data := []byte("created content")

	f, err := filesystem.Create("create.txt")
	if err != nil {
		t.Fatalf("Create: got error %v, want nil", err)
	}
	n, err := f.Write(data)
	if err != nil {
		fsutil.CloseQuietly(f)
		t.Fatalf("Write: got error %v, want nil", err)
	}
	if n != len(data) {
		fsutil.CloseQuietly(f)
		t.Fatalf("Write: wrote %d bytes, want %d", n, len(data))
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: got error %v, want nil", err)
	}

	r, err := filesystem.Open("create.txt")
	if err != nil {
		t.Fatalf("Open: got error %v, want nil", err)
	}
	defer fsutil.CloseQuietly(r)

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: got error %v, want nil", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadAll: got %q, want %q", got, data)
	}
}

func testWriteFileReadFile(t *testing.T, filesystem fsutil.Filesystem) {
	data := []byte("writefile content")

	if err := filesystem.WriteFile("writefile.txt", data, 0o644); err != nil {
		t.Fatalf("WriteFile: got error %v, want nil", err)
	}
	got, err := filesystem.ReadFile("writefile.txt")
	if err != nil {
		t.Fatalf("ReadFile: got error %v, want nil", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadFile: got %q, want %q", got, data)
	}

	info, err := filesystem.Stat("writefile.txt")
	if err != nil {
		t.Fatalf("Stat: got error %v, want nil", err)
	}
	if info.Size() != int64(len(data)) {
		t.Errorf("Stat: size %d, want %d", info.Size(), len(data))
	}
	if !info.Mode().IsRegular() {
		t.Errorf("Stat: mode %v, want regular file", info.Mode())
	}
}

func testOpenFileReadOnly(t *testing.T, filesystem fsutil.Filesystem) {
	data := []byte("openfile content")
	if err := filesystem.WriteFile("openfile.txt", data, 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}

	f, err := filesystem.OpenFile("openfile.txt", os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile: got error %v, want nil", err)
	}
	defer fsutil.CloseQuietly(f)

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: got error %v, want nil", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadAll: got %q, want %q", got, data)
	}
}

func testExists(t *testing.T, filesystem fsutil.Filesystem) {
	if err := filesystem.WriteFile("exists.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}

	ok, err := filesystem.Exists("exists.txt")
	if err != nil {
		t.Fatalf("Exists: got error %v, want nil", err)
	}
	if !ok {
		t.Error("Exists: got false for existing file, want true")
	}

	ok, err = filesystem.Exists("missing.txt")
	if err != nil {
		t.Fatalf("Exists: got error %v for missing file, want nil", err)
	}
	if ok {
		t.Error("Exists: got true for missing file, want false")
	}
}

func testRemove(t *testing.T, filesystem fsutil.Filesystem) {
	if err := filesystem.WriteFile("remove.txt", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: setup failed: %v", err)
	}
	if err := filesystem.Remove("remove.txt"); err != nil {
		t.Fatalf("Remove: got error %v, want nil", err)
	}
	ok, err := filesystem.Exists("remove.txt")
	if err != nil {
		t.Fatalf("Exists: got error %v, want nil", err)
	}
	if ok {
		t.Error("Exists: file still present after Remove")
	}
}

func testOpenNotExist(t *testing.T, filesystem fsutil.Filesystem) {
	if _, err := filesystem.Open("no-such-file.txt"); err == nil {
		t.Error("Open: got nil error for missing file, want error")
	}
}
