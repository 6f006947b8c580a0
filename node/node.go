// Package node implements the runtime tree model for schema-described API
// objects: construction, deep copy, kind-aware equality, path navigation,
// and the field-name catalog.
package node

import (
	"github.com/cockroachdb/errors"

	"github.com/kodama-dev/kodama/descriptor"
)

// Node is a live instance of one descriptor.  It owns its field values
// exclusively; sharing a child between two parents is not supported and
// Clone breaks all sharing.
type Node struct {
	desc   *descriptor.Descriptor
	values map[string]*Value

	// Catalog state is built lazily and never auto-invalidated on
	// mutation; see RepopulateCatalog.
	catalog  []CatalogEntry
	fieldCat map[string][]int
	kindCat  map[string][]int
	catBuilt bool
}

// New returns an empty instance of d.  It panics on a nil descriptor; nodes
// without a shape are meaningless everywhere downstream.
func New(d *descriptor.Descriptor) *Node {
	if d == nil {
		panic("node.New: nil descriptor")
	}
	return &Node{desc: d, values: make(map[string]*Value)}
}

// Desc returns the node's descriptor.
func (n *Node) Desc() *descriptor.Descriptor { return n.desc }

// Set stores v under the declared field name.  A nil v clears the field back
// to absent; Null() stores the explicit null marker.  Setting an undeclared
// field fails with ErrUnknownField.
func (n *Node) Set(field string, v *Value) error {
	if n.desc.Field(field) == nil {
		return errors.Wrapf(ErrUnknownField, "%s has no field %q", n.desc.Name, field)
	}
	if v == nil {
		delete(n.values, field)
		return nil
	}
	n.values[field] = v
	return nil
}

// Get returns the stored value for field, or nil when the field is absent or
// undeclared.
func (n *Node) Get(field string) *Value {
	return n.values[field]
}

// Clone returns a deep copy of n sharing no state with the original.  The
// copy's catalog starts unbuilt.
func (n *Node) Clone() *Node {
	res := New(n.desc)
	for k, v := range n.values {
		res.values[k] = v.Clone()
	}
	return res
}

// Normalize maps a stored value to its canonical comparison form for the
// declared field f: null collapses to absent, and for container fields
// absent collapses to the empty container.  Canonical absence for a
// container is empty, not null.  Equality and diff both compare normalized
// values.
func Normalize(v *Value, f *descriptor.Field) *Value {
	if v != nil && v.Type == NullValue {
		v = nil
	}
	if v == nil {
		if f.List {
			return &Value{Type: ListValue}
		}
		if f.Type == descriptor.StringMapType {
			return &Value{Type: MapValue}
		}
		return nil
	}
	return v
}

// Equal reports recursive, kind-aware equality of two nodes.  Nodes of
// different kinds are never equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.desc.Key() != b.desc.Key() {
		return false
	}
	for _, f := range a.desc.Fields() {
		av := Normalize(a.values[f.Name], &f)
		bv := Normalize(b.values[f.Name], &f)
		if av == nil || bv == nil {
			if av != bv {
				return false
			}
			continue
		}
		if !ValueEqual(av, bv) {
			return false
		}
	}
	return true
}
