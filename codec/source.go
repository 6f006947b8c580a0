package codec

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/kodama-dev/kodama/node"
)

// Style selects the cosmetic rendering of synthesized construction source.
// The represented value is identical across styles.
type Style string

const (
	// StyleCompact renders the whole construction on a single line.
	StyleCompact Style = "compact"
	// StyleBlock renders one field per line, indented with tabs.
	StyleBlock Style = "block"
)

// ToSource synthesizes Go construction source that, evaluated against the
// node package's Make/F/L helpers, reproduces a tree equal to n.  The caller
// supplies any import boilerplate.  A non-empty assignTo prefixes an
// assignment target.  Any style other than the two constants above is
// ErrUnknownStyle.
func ToSource(n *node.Node, style Style, assignTo string) (string, error) {
	if n == nil {
		return "", ErrNotTree
	}
	var body string
	switch style {
	case StyleCompact:
		body = compactNode(n)
	case StyleBlock:
		body = blockNode(n, 0)
	default:
		return "", errors.Wrapf(ErrUnknownStyle, "%q", style)
	}
	if assignTo != "" {
		return assignTo + " := " + body, nil
	}
	return body, nil
}

// sourceFields returns the declared fields to render: occupied, non-null,
// non-empty, in declared order.  This mirrors the minimal generic form, so
// evaluated source and serialized trees agree.
func sourceFields(n *node.Node) []string {
	var res []string
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
		res = append(res, f.Name)
	}
	return res
}

func compactNode(n *node.Node) string {
	d := n.Desc()
	var b strings.Builder
	b.WriteString("node.Make(" + strconv.Quote(d.Version) + ", " + strconv.Quote(d.Name))
	for _, name := range sourceFields(n) {
		b.WriteString(", node.F(" + strconv.Quote(name) + ", " + compactValue(n.Get(name)) + ")")
	}
	b.WriteString(")")
	return b.String()
}

func compactValue(v *node.Value) string {
	switch v.Type {
	case node.EntityValue:
		return compactNode(v.Entity)
	case node.ListValue:
		if lit, ok := scalarListLit(v); ok {
			return lit
		}
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = compactValue(e)
		}
		if allEntities(v) {
			for i, e := range v.List {
				parts[i] = compactNode(e.Entity)
			}
			return "node.L(" + strings.Join(parts, ", ") + ")"
		}
		return "node.FromList(" + strings.Join(wrapValues(v, parts), ", ") + ")"
	case node.MapValue:
		return mapLit(v.Map)
	default:
		return scalarLit(v)
	}
}

func blockNode(n *node.Node, depth int) string {
	d := n.Desc()
	names := sourceFields(n)
	head := "node.Make(" + strconv.Quote(d.Version) + ", " + strconv.Quote(d.Name)
	if len(names) == 0 {
		return head + ")"
	}
	var b strings.Builder
	b.WriteString(head + ",\n")
	for _, name := range names {
		b.WriteString(indent(depth + 1))
		b.WriteString("node.F(" + strconv.Quote(name) + ", " + blockValue(n.Get(name), depth+1) + "),\n")
	}
	b.WriteString(indent(depth) + ")")
	return b.String()
}

func blockValue(v *node.Value, depth int) string {
	switch v.Type {
	case node.EntityValue:
		return blockNode(v.Entity, depth)
	case node.ListValue:
		if lit, ok := scalarListLit(v); ok {
			return lit
		}
		if allEntities(v) {
			var b strings.Builder
			b.WriteString("node.L(\n")
			for _, e := range v.List {
				b.WriteString(indent(depth+1) + blockNode(e.Entity, depth+1) + ",\n")
			}
			b.WriteString(indent(depth) + ")")
			return b.String()
		}
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = blockValue(e, depth)
		}
		return "node.FromList(" + strings.Join(wrapValues(v, parts), ", ") + ")"
	case node.MapValue:
		return mapLit(v.Map)
	default:
		return scalarLit(v)
	}
}

func indent(depth int) string {
	return strings.Repeat("\t", depth)
}

func allEntities(v *node.Value) bool {
	for _, e := range v.List {
		if e.Type != node.EntityValue {
			return false
		}
	}
	return len(v.List) > 0
}

// scalarListLit renders a homogeneous scalar sequence as a plain Go slice
// literal, when possible.
func scalarListLit(v *node.Value) (string, bool) {
	if len(v.List) == 0 {
		return "", false
	}
	t := v.List[0].Type
	for _, e := range v.List {
		if e.Type != t {
			return "", false
		}
	}
	var elem string
	switch t {
	case node.StringValue:
		elem = "[]string"
	case node.IntValue:
		elem = "[]int64"
	case node.FloatValue:
		elem = "[]float64"
	default:
		return "", false
	}
	parts := make([]string, len(v.List))
	for i, e := range v.List {
		parts[i] = scalarLit(e)
	}
	return elem + "{" + strings.Join(parts, ", ") + "}", true
}

// wrapValues wraps non-entity rendered elements in their Value constructors
// for mixed sequences that have no plain literal form.
func wrapValues(v *node.Value, parts []string) []string {
	res := make([]string, len(parts))
	for i, e := range v.List {
		switch e.Type {
		case node.StringValue:
			res[i] = "node.FromString(" + parts[i] + ")"
		case node.IntValue:
			res[i] = "node.FromInt(" + parts[i] + ")"
		case node.FloatValue:
			res[i] = "node.FromFloat(" + parts[i] + ")"
		case node.BoolValue:
			res[i] = "node.FromBool(" + parts[i] + ")"
		case node.EntityValue:
			res[i] = "node.FromEntity(" + parts[i] + ")"
		case node.MapValue:
			res[i] = "node.FromStringMap(" + parts[i] + ")"
		case node.NullValue:
			res[i] = "node.Null()"
		default:
			res[i] = parts[i]
		}
	}
	return res
}

func scalarLit(v *node.Value) string {
	switch v.Type {
	case node.StringValue:
		return strconv.Quote(v.String)
	case node.IntValue:
		return strconv.FormatInt(v.Int64, 10)
	case node.FloatValue:
		s := strconv.FormatFloat(v.Float64, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case node.BoolValue:
		return strconv.FormatBool(v.Bool)
	default:
		return "nil"
	}
}

func mapLit(m map[string]string) string {
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Quote(k) + ": " + strconv.Quote(m[k])
	}
	return "map[string]string{" + strings.Join(parts, ", ") + "}"
}
