package fsutil

import (
	"fmt"
	"path/filepath"
)

// RequireDirectory ensures path is usable as a directory on fsys. An
// existing regular file at path fails with ErrExistsAsFile, and an existing
// directory that is not writable fails with ErrNotWritable. A missing path
// is created along with any missing parents, best effort: a creation
// failure is not surfaced, matching the permissive contract callers of this
// package rely on. An existing writable directory is a no-op.
func RequireDirectory(fsys Filesystem, path string) error {
	info, err := fsys.Stat(path)
	switch {
	case err != nil:
		_ = fsys.MkdirAll(path, 0o755)
	case !info.IsDir():
		return fmt.Errorf("fsutil: require directory %q: %w", path, ErrExistsAsFile)
	case info.Mode().Perm()&0o200 == 0:
		return fmt.Errorf("fsutil: require directory %q: %w", path, ErrNotWritable)
	}
	return nil
}

// Children returns the direct entries of path when it is a directory, as
// full paths in filesystem order. For anything else, a regular file or a
// path that cannot be examined, the result is path itself as a single
// element. A directory whose listing fails yields nil, indistinguishable
// from an empty directory.
func Children(fsys Filesystem, path string) []string {
	info, err := fsys.Stat(path)
	if err != nil || !info.IsDir() {
		return []string{path}
	}

	entries, err := fsys.ReadDir(path)
	if err != nil {
		return nil
	}
	children := make([]string, 0, len(entries))
	for _, entry := range entries {
		children = append(children, filepath.Join(path, entry.Name()))
	}
	return children
}
