package fsutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RelativePath returns the path of node relative to root, comparing both in
// canonical form (absolute, symlinks resolved). Both paths must exist on the
// native filesystem.
//
// If root is /srv/data and node is /srv/data/assembly/pom.xml, the result is
// assembly/pom.xml. A node that is not strictly under root, including node
// equal to root, fails with ErrNotDescendant.
func RelativePath(root, node string) (string, error) {
	rootPath, err := canonical(root)
	if err != nil {
		return "", err
	}
	nodePath, err := canonical(node)
	if err != nil {
		return "", err
	}

	prefix := rootPath + string(filepath.Separator)
	if !strings.HasPrefix(nodePath, prefix) {
		return "", fmt.Errorf("fsutil: relative %q to %q: %w", node, root, ErrNotDescendant)
	}
	return nodePath[len(prefix):], nil
}

// canonical resolves path to its absolute, symlink-free form.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("fsutil: resolve %q: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("fsutil: resolve %q: %w", path, err)
	}
	return resolved, nil
}
