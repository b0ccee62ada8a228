package fsutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
)

// DefaultBufferSize is the chunk size used by Copy.
const DefaultBufferSize = 8024

// Copy streams src into dst until EOF using the default buffer size and
// returns the number of bytes transferred. Neither stream is closed; both
// remain owned by the caller.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	return CopyBuffer(dst, src, DefaultBufferSize)
}

// CopyBuffer is Copy with an explicit buffer size. Chunks are written in the
// order they are read; bytes already written before a failure are not rolled
// back. A non-positive size fails with ErrBufferSize.
func CopyBuffer(dst io.Writer, src io.Reader, size int) (int64, error) {
	if size < 1 {
		return 0, fmt.Errorf("fsutil: copy: size %d: %w", size, ErrBufferSize)
	}

	buf := make([]byte, size)
	var count int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			count += int64(w)
			if werr != nil {
				return count, fmt.Errorf("fsutil: copy: write: %w", werr)
			}
			if w < n {
				return count, fmt.Errorf("fsutil: copy: write: %w", io.ErrShortWrite)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return count, nil
			}
			return count, fmt.Errorf("fsutil: copy: read: %w", err)
		}
	}
}

// CopyToFile streams src into a new file at path on fsys, creating missing
// parent directories first, and returns the number of bytes written. An
// existing file at path is truncated. Parent directory creation is best
// effort; a failure there surfaces as the create error if it actually blocks
// writing. The destination is closed on every return path, with close errors
// suppressed.
func CopyToFile(fsys Filesystem, src io.Reader, path string) (int64, error) {
	_ = fsys.MkdirAll(filepath.Dir(path), 0o755)

	out, err := fsys.Create(path)
	if err != nil {
		return 0, fmt.Errorf("fsutil: create %q: %w", path, err)
	}
	defer CloseQuietly(out)

	return Copy(out, src)
}

// CloseQuietly closes c, swallowing any error. It is a no-op when c is nil.
// Intended for cleanup paths where a close failure has nothing left to
// invalidate.
func CloseQuietly(c io.Closer) {
	if c == nil {
		return
	}
	_ = c.Close()
}
