// Package descriptor holds the static shape metadata for API object kinds.
//
// A schema compiler emits one Descriptor per (version, kind) and registers
// it at init time.  Everything else in this module dispatches over these
// descriptors rather than probing values dynamically.
package descriptor

import "fmt"

// Type is the declared type of a field value.
type Type int

const (
	InvalidType Type = iota
	StringType
	IntType
	FloatType
	BoolType
	// EntityType references another registered kind, named by Field.Elem.
	EntityType
	// StringMapType is a string-keyed map of strings.
	StringMapType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:    "string",
		IntType:       "int",
		FloatType:     "float",
		BoolType:      "bool",
		EntityType:    "entity",
		StringMapType: "map[string]string",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"string":            StringType,
		"int":               IntType,
		"float":             FloatType,
		"bool":              BoolType,
		"entity":            EntityType,
		"map[string]string": StringMapType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

// Field describes one declared field of a kind.
type Field struct {
	Name string
	Type Type

	// Elem is the referenced kind name when Type is EntityType.  The
	// referenced kind lives in the same version as the owning descriptor.
	Elem string

	// List marks the field as an ordered sequence of Type.  Only scalar
	// and entity element types occur; maps are never list elements.
	List bool

	Required bool
}

// TypeString renders the declared kind of f the way conformance messages
// and reports present it, e.g. "string", "[]Container", "map[string]string".
func (f *Field) TypeString() string {
	base := f.Type.String()
	if f.Type == EntityType {
		base = f.Elem
	}
	if f.List {
		return "[]" + base
	}
	return base
}

// Descriptor is the immutable shape description for one (version, kind).
type Descriptor struct {
	Version string
	Name    string

	// Document marks kinds that may appear as top-level YAML/JSON
	// documents carrying apiVersion/kind markers.
	Document bool

	// Required and Optional keep the schema-declared field order.
	Required []Field
	Optional []Field
}

// Key is the registry key for d.
func (d *Descriptor) Key() string {
	return d.Version + "/" + d.Name
}

// Field returns the declared field named name, or nil.
func (d *Descriptor) Field(name string) *Field {
	for i := range d.Required {
		if d.Required[i].Name == name {
			return &d.Required[i]
		}
	}
	for i := range d.Optional {
		if d.Optional[i].Name == name {
			return &d.Optional[i]
		}
	}
	return nil
}

// Fields returns all declared fields, required first, each group in
// declared order.  The result is a copy and may be retained.
func (d *Descriptor) Fields() []Field {
	res := make([]Field, 0, len(d.Required)+len(d.Optional))
	res = append(res, d.Required...)
	res = append(res, d.Optional...)
	return res
}
