package diff

import (
	"fmt"

	"github.com/kodama-dev/kodama/node"
)

// Class tags one structural difference.
type Class int

const (
	// IncompatibleTypes: the compared positions hold values of
	// incomparable concrete kinds; no descent happens beneath them.
	IncompatibleTypes Class = iota
	// TypeMismatch: two scalars of different kinds.
	TypeMismatch
	// ValueMismatch: two scalars of the same kind with different values,
	// or absence compared against a present value.
	ValueMismatch
	// LengthMismatch: two sequences of different length.
	LengthMismatch
	// ElementMismatch: sequence elements of incompatible kinds at the
	// same position.
	ElementMismatch
	// KeyMismatch: two string maps with different key sets.
	KeyMismatch
	// ItemMismatch: a shared string-map key with different values.
	ItemMismatch
)

func (c Class) String() string {
	s, ok := map[Class]string{
		IncompatibleTypes: "Incompatible types",
		TypeMismatch:      "Type mismatch",
		ValueMismatch:     "Value mismatch",
		LengthMismatch:    "Length mismatch",
		ElementMismatch:   "Element mismatch",
		KeyMismatch:       "Key mismatch",
		ItemMismatch:      "Item mismatch",
	}[c]
	if ok {
		return s
	}
	return "<unknown class>"
}

// Record is one structural difference between two trees.
type Record struct {
	Path   node.Path
	Class  Class
	Report string
}

func record(recs *[]Record, path node.Path, c Class, detail string, args ...any) {
	report := c.String()
	if detail != "" {
		report += ": " + fmt.Sprintf(detail, args...)
	}
	*recs = append(*recs, Record{Path: path.Clone(), Class: c, Report: report})
}
