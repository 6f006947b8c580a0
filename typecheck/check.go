// Package typecheck walks a constructed tree and reports deviations from the
// declared shapes.  Findings are soft: the walk never fails and the tree
// stays usable.
package typecheck

import (
	"fmt"

	"github.com/kodama-dev/kodama/descriptor"
	"github.com/kodama-dev/kodama/node"
)

// Warning is one schema-conformance deviation found in a constructed tree.
type Warning struct {
	// Version and Kind identify the descriptor whose field deviates.
	Version string
	Kind    string
	Field   string
	Path    node.Path
	Message string
}

// Check compares n's occupied fields against their declared kinds.  It
// returns zero or more warnings and never fails for conformance issues.
func Check(n *node.Node) []Warning {
	var ws []Warning
	check(n, nil, &ws)
	return ws
}

func check(n *node.Node, base node.Path, ws *[]Warning) {
	d := n.Desc()
	for _, f := range d.Fields() {
		v := n.Get(f.Name)
		path := append(base.Clone(), node.FieldStep(f.Name))

		if v == nil || v.Type == node.NullValue {
			switch {
			case f.Required:
				warn(ws, d, &f, path, fmt.Sprintf("%s is unset but should have been `%s`",
					f.Name, f.TypeString()))
			case v != nil && f.List:
				warn(ws, d, &f, path, fmt.Sprintf("%s is null; use an empty list", f.Name))
			case v != nil && f.Type == descriptor.StringMapType:
				warn(ws, d, &f, path, fmt.Sprintf("%s is null; use an empty dict", f.Name))
			}
			continue
		}

		switch {
		case f.List:
			checkList(n, &f, v, path, ws)
		case f.Type == descriptor.EntityType:
			if v.Type != node.EntityValue || v.Entity.Desc().Name != f.Elem {
				warn(ws, d, &f, path, fmt.Sprintf("%s is %s, expecting `%s`",
					f.Name, runtimeName(v), f.TypeString()))
				continue
			}
			check(v.Entity, path, ws)
		case f.Type == descriptor.StringMapType:
			if v.Type != node.MapValue {
				warn(ws, d, &f, path, fmt.Sprintf("%s is %s, expecting `%s`",
					f.Name, runtimeName(v), f.TypeString()))
				continue
			}
			if f.Required && len(v.Map) == 0 {
				warn(ws, d, &f, path, fmt.Sprintf("required field %s is present but empty", f.Name))
			}
		default:
			if !scalarMatches(v.Type, f.Type) {
				warn(ws, d, &f, path, fmt.Sprintf("%s is %s, expecting `%s`",
					f.Name, runtimeName(v), f.TypeString()))
			}
		}
	}
}

func checkList(n *node.Node, f *descriptor.Field, v *node.Value, path node.Path, ws *[]Warning) {
	d := n.Desc()
	if v.Type != node.ListValue {
		warn(ws, d, f, path, fmt.Sprintf("%s is %s, expecting `%s`",
			f.Name, runtimeName(v), f.TypeString()))
		return
	}
	if f.Required && len(v.List) == 0 {
		warn(ws, d, f, path, fmt.Sprintf("required field %s is present but empty", f.Name))
		return
	}
	for i, ev := range v.List {
		elemPath := append(path.Clone(), node.IndexStep(i))
		if f.Type == descriptor.EntityType {
			if ev.Type != node.EntityValue || ev.Entity.Desc().Name != f.Elem {
				warn(ws, d, f, elemPath, fmt.Sprintf("%s element is %s, expecting `%s`",
					f.Name, runtimeName(ev), f.Elem))
				continue
			}
			check(ev.Entity, elemPath, ws)
			continue
		}
		if !scalarMatches(ev.Type, f.Type) {
			warn(ws, d, f, elemPath, fmt.Sprintf("%s element is %s, expecting `%s`",
				f.Name, runtimeName(ev), f.Type))
		}
	}
}

func warn(ws *[]Warning, d *descriptor.Descriptor, f *descriptor.Field, path node.Path, msg string) {
	*ws = append(*ws, Warning{
		Version: d.Version,
		Kind:    d.Name,
		Field:   f.Name,
		Path:    path,
		Message: msg,
	})
}

func runtimeName(v *node.Value) string {
	if v.Type == node.EntityValue {
		return v.Entity.Desc().Name
	}
	return v.Type.String()
}

func scalarMatches(vt node.ValueType, ft descriptor.Type) bool {
	switch ft {
	case descriptor.StringType:
		return vt == node.StringValue
	case descriptor.IntType:
		return vt == node.IntValue
	case descriptor.FloatType:
		return vt == node.FloatValue
	case descriptor.BoolType:
		return vt == node.BoolValue
	}
	return false
}
