package node

import (
	"maps"
	"slices"
)

// ValueType is the runtime type of a stored Value.  It may disagree with the
// field's declared type; the typecheck package reports such deviations.
type ValueType int

const (
	// NullValue is an explicit null marker.  It is distinct from absence:
	// an absent field has no Value at all.  The distinction lets the type
	// checker tell "null where a container belongs" from "never set".
	NullValue ValueType = iota
	StringValue
	IntValue
	FloatValue
	BoolValue
	EntityValue
	ListValue
	MapValue
)

func (t ValueType) String() string {
	s, ok := map[ValueType]string{
		NullValue:   "null",
		StringValue: "string",
		IntValue:    "int",
		FloatValue:  "float",
		BoolValue:   "bool",
		EntityValue: "entity",
		ListValue:   "list",
		MapValue:    "map[string]string",
	}[t]
	if ok {
		return s
	}
	return "<unknown value type>"
}

// Value is a tagged union holding one stored field value: a scalar, a nested
// entity, an ordered sequence, a string map, or the explicit null marker.
type Value struct {
	Type ValueType

	String  string
	Int64   int64
	Float64 float64
	Bool    bool

	Entity *Node
	List   []*Value
	Map    map[string]string
}

func Null() *Value {
	return &Value{Type: NullValue}
}

func FromString(v string) *Value {
	return &Value{Type: StringValue, String: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntValue, Int64: v}
}

func FromFloat(v float64) *Value {
	return &Value{Type: FloatValue, Float64: v}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolValue, Bool: v}
}

func FromEntity(n *Node) *Value {
	return &Value{Type: EntityValue, Entity: n}
}

func FromList(vs ...*Value) *Value {
	return &Value{Type: ListValue, List: vs}
}

func FromStrings(ss []string) *Value {
	vs := make([]*Value, len(ss))
	for i, s := range ss {
		vs[i] = FromString(s)
	}
	return FromList(vs...)
}

func FromStringMap(m map[string]string) *Value {
	return &Value{Type: MapValue, Map: maps.Clone(m)}
}

// IsScalar reports whether v is a leaf value, including the null marker.
func (v *Value) IsScalar() bool {
	switch v.Type {
	case EntityValue, ListValue, MapValue:
		return false
	default:
		return true
	}
}

// Clone returns a deep copy of v sharing no state with the original.
func (v *Value) Clone() *Value {
	res := &Value{
		Type:    v.Type,
		String:  v.String,
		Int64:   v.Int64,
		Float64: v.Float64,
		Bool:    v.Bool,
	}
	if v.Entity != nil {
		res.Entity = v.Entity.Clone()
	}
	if v.List != nil {
		res.List = make([]*Value, len(v.List))
		for i, lv := range v.List {
			res.List[i] = lv.Clone()
		}
	}
	if v.Map != nil {
		res.Map = maps.Clone(v.Map)
	}
	return res
}

// ValueEqual reports kind-aware recursive equality: sequences compare
// order-sensitively, maps by key set and values, entities per declared field.
// A nil Value (absence) equals only nil or null.
func ValueEqual(a, b *Value) bool {
	if a == nil || a.Type == NullValue {
		return b == nil || b.Type == NullValue
	}
	if b == nil || b.Type == NullValue {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case StringValue:
		return a.String == b.String
	case IntValue:
		return a.Int64 == b.Int64
	case FloatValue:
		return a.Float64 == b.Float64
	case BoolValue:
		return a.Bool == b.Bool
	case EntityValue:
		return Equal(a.Entity, b.Entity)
	case ListValue:
		return slices.EqualFunc(a.List, b.List, func(x, y *Value) bool {
			return ValueEqual(x, y)
		})
	case MapValue:
		return maps.Equal(a.Map, b.Map)
	}
	return false
}
