package fsutil

import "io/fs"

// File is an open file handle. Implementations should behave consistently
// with *os.File for the operations they support.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
	Seek(offset int64, whence int) (int64, error)
	Stat() (fs.FileInfo, error)
	Write(p []byte) (n int, err error)
}

// Filesystem abstracts a writable file tree. The billy subpackage provides
// implementations backed by the native filesystem and by memory.
type Filesystem interface {
	// Create opens the named file for writing, creating it if necessary
	// and truncating it otherwise.
	Create(name string) (File, error)

	// Open opens the named file for reading.
	Open(name string) (File, error)

	// OpenFile is the generalized open call, mirroring os.OpenFile.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Exists reports whether the named path exists. A missing path is not
	// an error.
	Exists(path string) (bool, error)

	// MkdirAll creates the named directory along with any missing parents.
	MkdirAll(path string, perm fs.FileMode) error

	// ReadDir returns the direct entries of the named directory.
	ReadDir(dirname string) ([]fs.FileInfo, error)

	// ReadFile returns the contents of the named file.
	ReadFile(path string) ([]byte, error)

	// Remove removes the named file or empty directory.
	Remove(name string) error

	// Stat returns file info for the named path.
	Stat(name string) (fs.FileInfo, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(filename string, data []byte, perm fs.FileMode) error
}
