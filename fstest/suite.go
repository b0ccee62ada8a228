// Package fstest provides a conformance test suite for fsutil.Filesystem
// implementations. Provider packages import it and run the suite against a
// fresh filesystem per invocation:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() fsutil.Filesystem {
//	        return myprovider.New()
//	    })
//	}
//
// The suite validates the interface contract and the behavior of the fsutil
// helper operations on top of it, not backend-specific details.
package fstest

import (
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/fsutil"
)

// TestSuite runs all conformance tests. newFS must return a fresh, empty
// filesystem each time it is called; tests create and modify files.
func TestSuite(t *testing.T, newFS func() fsutil.Filesystem) {
	t.Run("ReadWrite", func(t *testing.T) {
		TestReadWrite(t, newFS())
	})
	t.Run("Dirs", func(t *testing.T) {
		TestDirs(t, newFS())
	})
	t.Run("Helpers", func(t *testing.T) {
		TestHelpers(t, newFS())
	})
}
