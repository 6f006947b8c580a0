package node

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Navigation failures.  Each cause is a distinct sentinel so callers can
// discriminate with errors.Is.
var (
	// ErrUnknownField reports a name step naming no declared field, or a
	// key missing from a string map.
	ErrUnknownField = errors.New("unknown field")

	// ErrIndexRange reports an out-of-range index step on a sequence.
	ErrIndexRange = errors.New("index out of range")

	// ErrNotIndex reports a name step where a sequence requires an index.
	ErrNotIndex = errors.New("expected an index step")

	// ErrAbsent reports an attempt to descend through an absent or null
	// value.
	ErrAbsent = errors.New("descent through absent value")

	// ErrBadPath reports a malformed path: an unparsable string form, an
	// index step at an object position, or descent into a scalar.
	ErrBadPath = errors.New("malformed path")
)

// Catalog query input failures.
var (
	ErrBadName      = errors.New("name must be a non-empty field name")
	ErrBadFollowing = errors.New("unsupported following value")
)

// PathError carries the failing path and step for a navigation error.
type PathError struct {
	Path Path
	Step int
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %q, step %d: %v", e.Path.String(), e.Step, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

func pathErr(p Path, step int, err error) error {
	return &PathError{Path: p.Clone(), Step: step, Err: err}
}
