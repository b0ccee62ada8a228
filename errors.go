// Package fsutil provides stateless file and stream utilities over a small
// filesystem abstraction. Operations either succeed, fail with an I/O error
// wrapped with operation context, or fail with a precondition violation that
// matches ErrInvalidArgument via errors.Is().
package fsutil

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the category sentinel for precondition violations.
// Every specific precondition error below wraps it, so callers can branch on
// the category or on the specific condition.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrExistsAsFile is returned when a directory is required at a path that is
// occupied by a regular file.
var ErrExistsAsFile = fmt.Errorf("%w: path exists and is a file", ErrInvalidArgument)

// ErrNotWritable is returned when a required directory exists but cannot be
// written to.
var ErrNotWritable = fmt.Errorf("%w: directory is not writable", ErrInvalidArgument)

// ErrNotDescendant is returned when a relative path is requested for a node
// that is not strictly contained under the given root.
var ErrNotDescendant = fmt.Errorf("%w: path is not under root", ErrInvalidArgument)

// ErrBufferSize is returned when a copy is requested with a non-positive
// buffer size.
var ErrBufferSize = fmt.Errorf("%w: buffer size must be positive", ErrInvalidArgument)
