package billy

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// baseOSFS is a billy.Filesystem that acts like the native filesystem
// instead of chrooting to a directory.
type baseOSFS struct {
	osfs.ChrootOS
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (b *baseOSFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (b *baseOSFS) Root() string {
	return "/"
}

// NewBaseOSFS creates a filesystem that addresses the native filesystem by
// absolute path, without a chroot.
func NewBaseOSFS() *FS {
	return &FS{fs: &baseOSFS{}}
}
