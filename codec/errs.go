package codec

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrNotTree reports codec misuse: a tree operation given no tree.
	ErrNotTree = errors.New("expected a tree node")

	// ErrNotGeneric reports codec misuse: reconstruction given no mapping.
	ErrNotGeneric = errors.New("expected a generic mapping")

	// ErrUnknownStyle reports an unsupported source synthesis style.
	ErrUnknownStyle = errors.New("unsupported source style")
)

// Structural reconstruction failures.  Wrapped in a *StructuralError.
var (
	ErrUnknownKind     = errors.New("no descriptor for version/kind")
	ErrMissingRequired = errors.New("missing required field")
	ErrBadShape        = errors.New("value does not fit declared shape")
)

// StructuralError reports a conformance failure while reconstructing a tree
// from external input.  No partial tree is ever returned alongside one.
type StructuralError struct {
	Version string
	Kind    string
	Field   string
	Err     error
}

func (e *StructuralError) Error() string {
	at := e.Version + "/" + e.Kind
	if e.Field != "" {
		at += "." + e.Field
	}
	return fmt.Sprintf("%s: %v", at, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

func structErr(version, kind, field string, err error) error {
	return &StructuralError{Version: version, Kind: kind, Field: field, Err: err}
}
