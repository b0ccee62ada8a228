package fsutil_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/fsutil"
	"github.com/input-output-hk/catalyst-forge-libs/fsutil/billy"
)

// payload builds a deterministic byte sequence of the given length.
func payload(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*31 + 7)
	}
	return b
}

func TestCopy(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty input", input: nil},
		{name: "small input", input: []byte("hello, copy")},
		{name: "one mebibyte", input: payload(1 << 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			n, err := fsutil.Copy(&out, bytes.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.input)), n)
			assert.Equal(t, len(tt.input), out.Len())
			assert.True(t, bytes.Equal(tt.input, out.Bytes()), "output differs from input")
		})
	}
}

// TestCopyBuffer verifies the output is independent of the buffer size.
func TestCopyBuffer(t *testing.T) {
	input := payload(100_000)

	for _, size := range []int{1, 7, 512, fsutil.DefaultBufferSize, 1 << 16} {
		var out bytes.Buffer
		n, err := fsutil.CopyBuffer(&out, bytes.NewReader(input), size)
		require.NoError(t, err, "size %d", size)
		assert.Equal(t, int64(len(input)), n, "size %d", size)
		assert.True(t, bytes.Equal(input, out.Bytes()), "size %d: output differs from input", size)
	}
}

func TestCopyBuffer_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -8024} {
		var out bytes.Buffer
		n, err := fsutil.CopyBuffer(&out, bytes.NewReader([]byte("x")), size)
		assert.Zero(t, n)
		assert.ErrorIs(t, err, fsutil.ErrBufferSize, "size %d", size)
		assert.ErrorIs(t, err, fsutil.ErrInvalidArgument, "size %d", size)
	}
}

// brokenWriter fails after accepting limit bytes.
type brokenWriter struct {
	limit   int
	written int
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		return 0, errors.New("disk full")
	}
	w.written += len(p)
	return len(p), nil
}

func TestCopy_WriteFailure(t *testing.T) {
	input := payload(64 * 1024)
	n, err := fsutil.Copy(&brokenWriter{limit: 10_000}, bytes.NewReader(input))

	require.Error(t, err)
	assert.NotErrorIs(t, err, fsutil.ErrInvalidArgument)
	// Whatever was flushed before the failure stays counted.
	assert.Less(t, n, int64(len(input)))
}

func TestCopyToFile(t *testing.T) {
	const size = 1 << 20

	filesystems := map[string]fsutil.Filesystem{
		"memory": billy.NewInMemoryFS(),
		"os":     billy.NewOSFS(t.TempDir()),
	}

	for name, fsys := range filesystems {
		t.Run(name, func(t *testing.T) {
			input := payload(size)
			dest := "three/levels/down/blob.bin"

			n, err := fsutil.CopyToFile(fsys, bytes.NewReader(input), dest)
			require.NoError(t, err)
			assert.Equal(t, int64(size), n)

			for _, dir := range []string{"three", "three/levels", "three/levels/down"} {
				info, err := fsys.Stat(dir)
				require.NoError(t, err, "ancestor %q", dir)
				assert.True(t, info.IsDir(), "ancestor %q", dir)
			}

			got, err := fsys.ReadFile(dest)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(input, got), "destination content differs from source")
		})
	}
}

// erroringCloser always fails to close.
type erroringCloser struct{}

func (erroringCloser) Close() error { return errors.New("close failed") }

func TestCloseQuietly(t *testing.T) {
	assert.NotPanics(t, func() { fsutil.CloseQuietly(nil) })
	assert.NotPanics(t, func() { fsutil.CloseQuietly(erroringCloser{}) })
}
