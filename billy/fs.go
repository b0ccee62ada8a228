// Package billy implements fsutil.Filesystem on top of go-billy, providing
// native, chrooted, and in-memory filesystems behind one adapter.
package billy

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/input-output-hk/catalyst-forge-libs/fsutil"
)

// FS adapts a billy.Filesystem to fsutil.Filesystem.
type FS struct {
	fs billy.Filesystem
}

// NewFS wraps an arbitrary go-billy filesystem.
func NewFS(fsys billy.Filesystem) *FS {
	return &FS{fs: fsys}
}

// NewInMemoryFS returns a filesystem held entirely in memory.
func NewInMemoryFS() *FS {
	return &FS{fs: memfs.New()}
}

// NewOSFS returns a filesystem rooted at path on the native filesystem.
func NewOSFS(path string) *FS {
	return &FS{fs: osfs.New(path)}
}

// Create implements fsutil.Filesystem.
//
//nolint:ireturn // fsutil.File is the adapter's contract.
func (b *FS) Create(name string) (fsutil.File, error) {
	f, err := b.fs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("billy: create %q: %w", name, err)
	}
	return &File{file: f, fs: b}, nil
}

// Open implements fsutil.Filesystem.
//
//nolint:ireturn // fsutil.File is the adapter's contract.
func (b *FS) Open(name string) (fsutil.File, error) {
	f, err := b.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("billy: open %q: %w", name, err)
	}
	return &File{file: f, fs: b}, nil
}

// OpenFile implements fsutil.Filesystem.
//
//nolint:ireturn // fsutil.File is the adapter's contract.
func (b *FS) OpenFile(name string, flag int, perm fs.FileMode) (fsutil.File, error) {
	f, err := b.fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, fmt.Errorf("billy: openfile %q: %w", name, err)
	}
	return &File{file: f, fs: b}, nil
}

// Exists implements fsutil.Filesystem.
func (b *FS) Exists(path string) (bool, error) {
	_, err := b.fs.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("billy: stat %q: %w", path, err)
	}
}

// MkdirAll implements fsutil.Filesystem.
func (b *FS) MkdirAll(path string, perm fs.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("billy: mkdirall %q: %w", path, err)
	}
	return nil
}

// ReadDir implements fsutil.Filesystem.
func (b *FS) ReadDir(dirname string) ([]fs.FileInfo, error) {
	list, err := b.fs.ReadDir(dirname)
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", dirname, err)
	}
	return list, nil
}

// ReadFile implements fsutil.Filesystem.
func (b *FS) ReadFile(path string) ([]byte, error) {
	bts, err := util.ReadFile(b.fs, path)
	if err != nil {
		return nil, fmt.Errorf("billy: readfile %q: %w", path, err)
	}
	return bts, nil
}

// Remove implements fsutil.Filesystem.
func (b *FS) Remove(name string) error {
	if err := b.fs.Remove(name); err != nil {
		return fmt.Errorf("billy: remove %q: %w", name, err)
	}
	return nil
}

// Stat implements fsutil.Filesystem.
func (b *FS) Stat(name string) (fs.FileInfo, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", name, err)
	}
	return info, nil
}

// WriteFile implements fsutil.Filesystem.
func (b *FS) WriteFile(filename string, data []byte, perm fs.FileMode) error {
	if err := util.WriteFile(b.fs, filename, data, perm); err != nil {
		return fmt.Errorf("billy: writefile %q: %w", filename, err)
	}
	return nil
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // exposes the adapter target on purpose.
func (b *FS) Raw() billy.Filesystem {
	return b.fs
}
