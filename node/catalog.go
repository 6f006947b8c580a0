package node

import (
	"slices"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/kodama-dev/kodama/debug"
	"github.com/kodama-dev/kodama/descriptor"
)

// CatalogEntry locates one occupied field: the runtime kind of its value,
// the field name, and the path from the catalogued root.
type CatalogEntry struct {
	Kind  string
	Field string
	Path  Path
}

// Catalog returns the path-indexed enumeration of n's occupied fields, in
// pre-order: required fields before optional, each group in declared order,
// container elements in stored order.  The catalog is built on first use and
// is not invalidated by later mutation; call RepopulateCatalog after
// out-of-band changes.
func (n *Node) Catalog() []CatalogEntry {
	n.ensureCatalog()
	return slices.Clone(n.catalog)
}

// RepopulateCatalog drops the catalog and rebuilds it from the current tree.
func (n *Node) RepopulateCatalog() {
	n.catBuilt = false
	n.ensureCatalog()
}

func (n *Node) ensureCatalog() {
	if n.catBuilt {
		return
	}
	n.catalog = n.catalog[:0]
	n.fieldCat = make(map[string][]int)
	n.kindCat = make(map[string][]int)
	n.capture(n, nil)
	n.catBuilt = true
	if debug.Catalog() {
		debug.Logf("catalog for %s: %d entries\n", n.desc.Name, len(n.catalog))
	}
}

func (n *Node) add(kind, field string, path Path) {
	i := len(n.catalog)
	n.catalog = append(n.catalog, CatalogEntry{Kind: kind, Field: field, Path: path.Clone()})
	n.fieldCat[field] = append(n.fieldCat[field], i)
	n.kindCat[kind] = append(n.kindCat[kind], i)
}

func (n *Node) capture(at *Node, prefix Path) {
	for _, f := range at.desc.Fields() {
		v := at.values[f.Name]
		if v == nil || v.Type == NullValue {
			continue
		}
		path := append(prefix, FieldStep(f.Name))
		switch {
		case f.List:
			if v.Type != ListValue {
				n.add(v.Type.String(), f.Name, path)
				continue
			}
			if f.Type != descriptor.EntityType {
				n.add(f.Type.String(), f.Name, path)
				continue
			}
			for i, ev := range v.List {
				elemPath := append(path, IndexStep(i))
				if ev.Type != EntityValue {
					n.add(ev.Type.String(), f.Name, elemPath)
					continue
				}
				n.add(ev.Entity.desc.Name, f.Name, elemPath)
				n.capture(ev.Entity, elemPath)
			}
		case f.Type == descriptor.EntityType:
			if v.Type != EntityValue {
				n.add(v.Type.String(), f.Name, path)
				continue
			}
			n.add(v.Entity.desc.Name, f.Name, path)
			n.capture(v.Entity, path)
		case f.Type == descriptor.StringMapType:
			n.add(descriptor.StringMapType.String(), f.Name, path)
		default:
			n.add(v.Type.String(), f.Name, path)
		}
	}
}

// FindByName returns every catalog entry for fields named name.  A non-nil
// following restricts results to entries whose path contains the following
// segments as an order-preserving, not necessarily contiguous subsequence.
// It accepts a dotted string (numeric segments are indices), a Path, or a
// []any of names and indices; any other shape is ErrBadFollowing.
func (n *Node) FindByName(name string, following any) ([]CatalogEntry, error) {
	if name == "" {
		return nil, ErrBadName
	}
	n.ensureCatalog()
	var res []CatalogEntry
	for _, i := range n.fieldCat[name] {
		res = append(res, n.catalog[i])
	}
	if following == nil {
		return res, nil
	}
	signposts, err := followingSteps(following)
	if err != nil {
		return nil, err
	}
	candidates := res
	res = nil
	for _, ce := range candidates {
		if containsSubsequence(ce.Path, signposts) {
			res = append(res, ce)
		}
	}
	return res, nil
}

// FindByKind returns every catalog entry whose value is of the named runtime
// kind, e.g. "Container" or "string".
func (n *Node) FindByKind(kind string) []CatalogEntry {
	n.ensureCatalog()
	var res []CatalogEntry
	for _, i := range n.kindCat[kind] {
		res = append(res, n.catalog[i])
	}
	return res
}

func followingSteps(following any) (Path, error) {
	switch x := following.(type) {
	case string:
		return ParsePath(x)
	case Path:
		return x, nil
	case []Step:
		return Path(x), nil
	case []string:
		res := make(Path, 0, len(x))
		for _, s := range x {
			res = append(res, parseStep(s))
		}
		return res, nil
	case []any:
		res := make(Path, 0, len(x))
		for _, e := range x {
			switch v := e.(type) {
			case string:
				res = append(res, parseStep(v))
			case int:
				res = append(res, IndexStep(v))
			case Step:
				res = append(res, v)
			default:
				return nil, errors.Wrapf(ErrBadFollowing, "element %T", e)
			}
		}
		return res, nil
	default:
		return nil, errors.Wrapf(ErrBadFollowing, "%T", following)
	}
}

func parseStep(s string) Step {
	if idx, err := strconv.Atoi(s); err == nil {
		return IndexStep(idx)
	}
	return FieldStep(s)
}

func containsSubsequence(path Path, signposts Path) bool {
	start := 0
	for _, sp := range signposts {
		found := false
		for i := start; i < len(path); i++ {
			if path[i] == sp {
				start = i + 1
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
