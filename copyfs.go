package fsutil

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// CopyFromFS copies the tree rooted at root inside src into fsys. The root
// prefix is stripped, so the tree lands at the top of fsys with its
// structure intact. Existing files are overwritten. Useful for unpacking an
// embed.FS into a writable filesystem.
func CopyFromFS(src fs.FS, fsys Filesystem, root string) error {
	root = path.Clean(root)

	walkErr := fs.WalkDir(src, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("fsutil: walk %q: %w", p, err)
		}

		if p == root {
			return nil
		}
		target := p
		if root != "." {
			target = strings.TrimPrefix(p, root+"/")
		}

		if d.IsDir() {
			if err := fsys.MkdirAll(target, 0o755); err != nil {
				return err
			}
			return nil
		}
		return copyEntry(src, fsys, p, target)
	})
	if walkErr != nil {
		return walkErr
	}
	return nil
}

// copyEntry streams a single source entry into fsys at target.
func copyEntry(src fs.FS, fsys Filesystem, source, target string) error {
	in, err := src.Open(source)
	if err != nil {
		return fmt.Errorf("fsutil: open %q: %w", source, err)
	}
	defer CloseQuietly(in)

	if _, err := CopyToFile(fsys, in, target); err != nil {
		return err
	}
	return nil
}
