package fsutil_test

import (
	"embed"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/fsutil"
	"github.com/input-output-hk/catalyst-forge-libs/fsutil/billy"
)

//go:embed testdata
var embedded embed.FS

func TestCopyFromFS(t *testing.T) {
	memFS := billy.NewInMemoryFS()
	require.NoError(t, fsutil.CopyFromFS(embedded, memFS, "testdata"))

	want := map[string]string{
		"root.txt":          "top level file\n",
		"sub/nested.txt":    "file under sub\n",
		"sub/deep/leaf.txt": "leaf, two levels down\n",
	}
	for path, content := range want {
		data, err := memFS.ReadFile(path)
		require.NoError(t, err, "path %q", path)
		assert.Equal(t, content, string(data), "path %q", path)
	}

	entries, err := memFS.ReadDir("sub")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCopyFromFS_SubdirOnly(t *testing.T) {
	memFS := billy.NewInMemoryFS()
	require.NoError(t, fsutil.CopyFromFS(embedded, memFS, "testdata/sub"))

	data, err := memFS.ReadFile("nested.txt")
	require.NoError(t, err)
	assert.Equal(t, "file under sub\n", string(data))

	// Siblings of the chosen root must not leak in.
	ok, err := memFS.Exists("root.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCopyFromFS_DotRoot(t *testing.T) {
	sub, err := fs.Sub(embedded, "testdata")
	require.NoError(t, err)

	memFS := billy.NewInMemoryFS()
	require.NoError(t, fsutil.CopyFromFS(sub, memFS, "."))

	data, err := memFS.ReadFile("sub/deep/leaf.txt")
	require.NoError(t, err)
	assert.Equal(t, "leaf, two levels down\n", string(data))
}

func TestCopyFromFS_Overwrite(t *testing.T) {
	memFS := billy.NewInMemoryFS()
	require.NoError(t, memFS.WriteFile("root.txt", []byte("stale"), 0o644))

	require.NoError(t, fsutil.CopyFromFS(embedded, memFS, "testdata"))

	data, err := memFS.ReadFile("root.txt")
	require.NoError(t, err)
	assert.Equal(t, "top level file\n", string(data))
}

func TestCopyFromFS_MissingRoot(t *testing.T) {
	err := fsutil.CopyFromFS(embedded, billy.NewInMemoryFS(), "testdata/absent")
	assert.Error(t, err)
}
