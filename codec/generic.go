// Package codec converts trees to and from interchange forms: a generic
// nested-map form, JSON text, multi-document YAML, and synthesized
// construction source.
package codec

import (
	"encoding/json"
	"maps"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/kodama-dev/kodama/descriptor"
	"github.com/kodama-dev/kodama/node"
)

type config struct {
	version string
	kind    string
}

type Option func(*config)

// WithKind selects the target descriptor explicitly instead of reading
// apiVersion/kind markers from the input.
func WithKind(version, kind string) Option {
	return func(c *config) {
		c.version = version
		c.kind = kind
	}
}

// ToGeneric converts a tree to the minimal generic nested-map form: absent
// and null fields and empty containers are omitted.  A nil node is ErrNotTree.
func ToGeneric(n *node.Node) (map[string]any, error) {
	if n == nil {
		return nil, ErrNotTree
	}
	return nodeToGeneric(n), nil
}

func nodeToGeneric(n *node.Node) map[string]any {
	res := make(map[string]any)
	for _, f := range n.Desc().Fields() {
		v := n.Get(f.Name)
		if v == nil || v.Type == node.NullValue {
			continue
		}
		if v.Type == node.ListValue && len(v.List) == 0 {
			continue
		}
		if v.Type == node.MapValue && len(v.Map) == 0 {
			continue
		}
		res[f.Name] = valueToGeneric(v)
	}
	return res
}

func valueToGeneric(v *node.Value) any {
	switch v.Type {
	case node.StringValue:
		return v.String
	case node.IntValue:
		return v.Int64
	case node.FloatValue:
		return v.Float64
	case node.BoolValue:
		return v.Bool
	case node.EntityValue:
		return nodeToGeneric(v.Entity)
	case node.ListValue:
		res := make([]any, len(v.List))
		for i, lv := range v.List {
			res[i] = valueToGeneric(lv)
		}
		return res
	case node.MapValue:
		return maps.Clone(v.Map)
	default:
		return nil
	}
}

// FromGeneric reconstructs a tree from the generic nested-map form.  The
// target descriptor comes from WithKind or, for document kinds, from the
// apiVersion/kind markers inside the mapping.  Reconstruction is fail-fast:
// an unrecognized kind, a missing required field, or a value that does not
// fit its declared shape is a *StructuralError and no tree is returned.
func FromGeneric(m map[string]any, opts ...Option) (*node.Node, error) {
	if m == nil {
		return nil, ErrNotGeneric
	}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	version, kind := cfg.version, cfg.kind
	if kind == "" {
		apiVersion, _ := m["apiVersion"].(string)
		kind, _ = m["kind"].(string)
		if apiVersion == "" || kind == "" {
			return nil, structErr(version, kind, "", errors.Wrap(ErrUnknownKind,
				"no apiVersion/kind markers"))
		}
		_, version = descriptor.ParseAPIVersion(apiVersion)
	}
	d := descriptor.Lookup(version, kind)
	if d == nil {
		return nil, structErr(version, kind, "", ErrUnknownKind)
	}
	return buildNode(d, m)
}

func buildNode(d *descriptor.Descriptor, m map[string]any) (*node.Node, error) {
	n := node.New(d)
	for _, f := range d.Fields() {
		raw, ok := m[f.Name]
		if !ok || raw == nil {
			if f.Required {
				return nil, structErr(d.Version, d.Name, f.Name, ErrMissingRequired)
			}
			continue
		}
		v, err := buildValue(d, &f, raw)
		if err != nil {
			return nil, err
		}
		if err := n.Set(f.Name, v); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func buildValue(d *descriptor.Descriptor, f *descriptor.Field, raw any) (*node.Value, error) {
	if f.List {
		seq, ok := raw.([]any)
		if !ok {
			return nil, structErr(d.Version, d.Name, f.Name,
				errors.Wrapf(ErrBadShape, "expected a sequence, got %T", raw))
		}
		vs := make([]*node.Value, len(seq))
		for i, e := range seq {
			ev, err := buildElem(d, f, e)
			if err != nil {
				return nil, err
			}
			vs[i] = ev
		}
		return node.FromList(vs...), nil
	}
	return buildElem(d, f, raw)
}

func buildElem(d *descriptor.Descriptor, f *descriptor.Field, raw any) (*node.Value, error) {
	switch f.Type {
	case descriptor.EntityType:
		m, err := asStringMap(raw)
		if err != nil {
			return nil, structErr(d.Version, d.Name, f.Name, err)
		}
		elem := descriptor.Lookup(d.Version, f.Elem)
		if elem == nil {
			return nil, structErr(d.Version, f.Elem, "", ErrUnknownKind)
		}
		child, err := buildNode(elem, m)
		if err != nil {
			return nil, err
		}
		return node.FromEntity(child), nil

	case descriptor.StringMapType:
		if m, ok := raw.(map[string]string); ok {
			return node.FromStringMap(m), nil
		}
		m, err := asStringMap(raw)
		if err != nil {
			return nil, structErr(d.Version, d.Name, f.Name, err)
		}
		res := make(map[string]string, len(m))
		for k, e := range m {
			s, ok := e.(string)
			if !ok {
				return nil, structErr(d.Version, d.Name, f.Name,
					errors.Wrapf(ErrBadShape, "map value for %q is %T, not string", k, e))
			}
			res[k] = s
		}
		return node.FromStringMap(res), nil

	default:
		// Scalars are stored as found; declared-kind deviations are the
		// type checker's concern, not the codec's.
		return scalarValue(d, f, raw)
	}
}

func scalarValue(d *descriptor.Descriptor, f *descriptor.Field, raw any) (*node.Value, error) {
	switch x := raw.(type) {
	case string:
		return node.FromString(x), nil
	case bool:
		return node.FromBool(x), nil
	case int:
		return node.FromInt(int64(x)), nil
	case int64:
		return node.FromInt(x), nil
	case uint64:
		return node.FromInt(int64(x)), nil
	case float64:
		return node.FromFloat(x), nil
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return node.FromInt(i), nil
		}
		fl, err := x.Float64()
		if err != nil {
			return nil, structErr(d.Version, d.Name, f.Name,
				errors.Wrapf(ErrBadShape, "bad number %q", x))
		}
		return node.FromFloat(fl), nil
	default:
		return nil, structErr(d.Version, d.Name, f.Name,
			errors.Wrapf(ErrBadShape, "expected a scalar, got %T", raw))
	}
}

func asStringMap(raw any) (map[string]any, error) {
	switch x := raw.(type) {
	case map[string]any:
		return x, nil
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, v := range x {
			s, ok := k.(string)
			if !ok {
				return nil, errors.Wrapf(ErrBadShape, "non-string key %v", k)
			}
			res[s] = v
		}
		return res, nil
	default:
		return nil, errors.Wrapf(ErrBadShape, "expected a mapping, got %T", raw)
	}
}
