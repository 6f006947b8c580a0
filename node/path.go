package node

import (
	"strconv"
	"strings"
)

// Step is one path element: a field name or a sequence index.
type Step struct {
	Field   string
	Index   int
	IsIndex bool
}

func FieldStep(name string) Step {
	return Step{Field: name}
}

func IndexStep(i int) Step {
	return Step{Index: i, IsIndex: true}
}

func (s Step) String() string {
	if s.IsIndex {
		return strconv.Itoa(s.Index)
	}
	return s.Field
}

// Path is an ordered list of steps from a root node.  Its string form is
// dotted, with numeric segments denoting indices: "containers.0.lifecycle".
type Path []Step

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

func (p Path) Clone() Path {
	res := make(Path, len(p))
	copy(res, p)
	return res
}

// ParsePath parses the dotted string form.  Segments of decimal digits parse
// as indices; empty segments are malformed.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, pathErr(nil, 0, ErrBadPath)
	}
	parts := strings.Split(s, ".")
	res := make(Path, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, pathErr(res, i, ErrBadPath)
		}
		if idx, err := strconv.Atoi(part); err == nil {
			res = append(res, IndexStep(idx))
			continue
		}
		res = append(res, FieldStep(part))
	}
	return res, nil
}

// At resolves p against n and returns the exact stored value.  The empty
// path resolves to n itself.  Failure modes are the distinct sentinels in
// errs.go, wrapped in a *PathError naming the failing step; callers wanting
// to avoid errors must pre-validate.
func (n *Node) At(p Path) (*Value, error) {
	cur := FromEntity(n)
	for i, st := range p {
		switch cur.Type {
		case EntityValue:
			if st.IsIndex {
				return nil, pathErr(p, i, ErrBadPath)
			}
			ent := cur.Entity
			if ent.desc.Field(st.Field) == nil {
				return nil, pathErr(p, i, ErrUnknownField)
			}
			v := ent.values[st.Field]
			if v == nil || v.Type == NullValue {
				return nil, pathErr(p, i, ErrAbsent)
			}
			cur = v

		case ListValue:
			if !st.IsIndex {
				return nil, pathErr(p, i, ErrNotIndex)
			}
			if st.Index < 0 || st.Index >= len(cur.List) {
				return nil, pathErr(p, i, ErrIndexRange)
			}
			cur = cur.List[st.Index]
			if cur.Type == NullValue {
				return nil, pathErr(p, i, ErrAbsent)
			}

		case MapValue:
			if st.IsIndex {
				return nil, pathErr(p, i, ErrBadPath)
			}
			s, ok := cur.Map[st.Field]
			if !ok {
				return nil, pathErr(p, i, ErrUnknownField)
			}
			cur = FromString(s)

		default:
			// scalar: nothing to descend into
			return nil, pathErr(p, i, ErrBadPath)
		}
	}
	return cur, nil
}

// AtPath is At over the dotted string form.
func (n *Node) AtPath(s string) (*Value, error) {
	p, err := ParsePath(s)
	if err != nil {
		return nil, err
	}
	return n.At(p)
}
