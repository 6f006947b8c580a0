package node

import (
	"fmt"

	"github.com/kodama-dev/kodama/descriptor"
)

// FieldVal pairs a field name with its value for literal construction.
type FieldVal struct {
	Name  string
	Value *Value
}

// F builds a FieldVal from a plain Go value.  Accepted kinds: nil (the null
// marker), string, int, int64, float64, bool, []string, []int64, []float64,
// map[string]string, *Node, []*Node, *Value.  F panics on anything else; it
// exists for literals, where a bad value is a programming error.
func F(name string, v any) FieldVal {
	return FieldVal{Name: name, Value: toValue(v)}
}

// L builds a sequence value from entity elements.
func L(nodes ...*Node) *Value {
	vs := make([]*Value, len(nodes))
	for i, n := range nodes {
		vs[i] = FromEntity(n)
	}
	return FromList(vs...)
}

// Make constructs an instance of the registered (version, kind) from field
// literals.  Like F, it panics on an unknown kind or field: Make is the
// evaluation target for synthesized construction source, and that source
// only names registered kinds and declared fields.
func Make(version, kind string, fields ...FieldVal) *Node {
	d := descriptor.Lookup(version, kind)
	if d == nil {
		panic(fmt.Sprintf("node.Make: no descriptor for %s/%s", version, kind))
	}
	n := New(d)
	for _, fv := range fields {
		if err := n.Set(fv.Name, fv.Value); err != nil {
			panic(fmt.Sprintf("node.Make: %v", err))
		}
	}
	return n
}

func toValue(v any) *Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case *Value:
		return x
	case string:
		return FromString(x)
	case int:
		return FromInt(int64(x))
	case int64:
		return FromInt(x)
	case float64:
		return FromFloat(x)
	case bool:
		return FromBool(x)
	case []string:
		return FromStrings(x)
	case []int64:
		vs := make([]*Value, len(x))
		for i, e := range x {
			vs[i] = FromInt(e)
		}
		return FromList(vs...)
	case []float64:
		vs := make([]*Value, len(x))
		for i, e := range x {
			vs[i] = FromFloat(e)
		}
		return FromList(vs...)
	case map[string]string:
		return FromStringMap(x)
	case *Node:
		return FromEntity(x)
	case []*Node:
		return L(x...)
	default:
		panic(fmt.Sprintf("node.F: unsupported literal value %T", v))
	}
}
