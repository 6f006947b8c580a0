// Package diff structurally compares two trees of the same declared shape
// and reports ordered difference records.  It is a structural-equality diff,
// not a minimal edit-distance patch.
package diff

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/kodama-dev/kodama/debug"
	"github.com/kodama-dev/kodama/node"
)

// Diff compares from and to depth-first in declared field order and returns
// one record per differing position.  Equal trees yield no records.  Both
// arguments must be non-nil; trees of different kinds yield a single
// "Incompatible types" record.
func Diff(from, to *node.Node) []Record {
	var recs []Record
	diffNode(from, to, nil, &recs)
	if debug.Diff() {
		debug.Logf("diff %s: %d records\n", from.Desc().Name, len(recs))
	}
	return recs
}

func diffNode(a, b *node.Node, path node.Path, recs *[]Record) {
	if a.Desc().Key() != b.Desc().Key() {
		record(recs, path, IncompatibleTypes, "%s vs %s", a.Desc().Name, b.Desc().Name)
		return
	}
	for _, f := range a.Desc().Fields() {
		av := node.Normalize(a.Get(f.Name), &f)
		bv := node.Normalize(b.Get(f.Name), &f)
		fieldPath := append(path.Clone(), node.FieldStep(f.Name))
		if av == nil || bv == nil {
			if av != bv {
				record(recs, fieldPath, ValueMismatch, "%s vs %s", describe(av), describe(bv))
			}
			continue
		}
		diffValue(av, bv, fieldPath, recs)
	}
}

func diffValue(a, b *node.Value, path node.Path, recs *[]Record) {
	if a.Type != b.Type {
		if a.IsScalar() && b.IsScalar() {
			record(recs, path, TypeMismatch, "%s vs %s", a.Type, b.Type)
			return
		}
		record(recs, path, IncompatibleTypes, "%s vs %s", describe(a), describe(b))
		return
	}
	switch a.Type {
	case node.EntityValue:
		diffNode(a.Entity, b.Entity, path, recs)
	case node.ListValue:
		diffList(a, b, path, recs)
	case node.MapValue:
		diffMap(a, b, path, recs)
	case node.StringValue:
		if a.String != b.String {
			record(recs, path, ValueMismatch, "%s", stringReport(a.String, b.String))
		}
	case node.IntValue:
		if a.Int64 != b.Int64 {
			record(recs, path, ValueMismatch, "%d vs %d", a.Int64, b.Int64)
		}
	case node.FloatValue:
		if a.Float64 != b.Float64 {
			record(recs, path, ValueMismatch, "%v vs %v", a.Float64, b.Float64)
		}
	case node.BoolValue:
		if a.Bool != b.Bool {
			record(recs, path, ValueMismatch, "%t vs %t", a.Bool, b.Bool)
		}
	}
}

func diffList(a, b *node.Value, path node.Path, recs *[]Record) {
	if len(a.List) != len(b.List) {
		record(recs, path, LengthMismatch, "%d elements vs %d", len(a.List), len(b.List))
		return
	}
	for i := range a.List {
		ae, be := a.List[i], b.List[i]
		elemPath := append(path.Clone(), node.IndexStep(i))
		if ae.Type != be.Type {
			record(recs, elemPath, ElementMismatch, "%s vs %s", describe(ae), describe(be))
			continue
		}
		if ae.Type == node.EntityValue && ae.Entity.Desc().Key() != be.Entity.Desc().Key() {
			record(recs, elemPath, ElementMismatch, "%s vs %s",
				ae.Entity.Desc().Name, be.Entity.Desc().Name)
			continue
		}
		diffValue(ae, be, elemPath, recs)
	}
}

func diffMap(a, b *node.Value, path node.Path, recs *[]Record) {
	aKeys := slices.Sorted(maps.Keys(a.Map))
	bKeys := slices.Sorted(maps.Keys(b.Map))
	if !slices.Equal(aKeys, bKeys) {
		var only []string
		for _, k := range aKeys {
			if _, ok := b.Map[k]; !ok {
				only = append(only, "-"+k)
			}
		}
		for _, k := range bKeys {
			if _, ok := a.Map[k]; !ok {
				only = append(only, "+"+k)
			}
		}
		record(recs, path, KeyMismatch, "%v", only)
		return
	}
	for _, k := range aKeys {
		if a.Map[k] == b.Map[k] {
			continue
		}
		keyPath := append(path.Clone(), node.FieldStep(k))
		record(recs, keyPath, ItemMismatch, "key %q: %q vs %q", k, a.Map[k], b.Map[k])
	}
}

func describe(v *node.Value) string {
	if v == nil {
		return "absent"
	}
	switch v.Type {
	case node.EntityValue:
		return v.Entity.Desc().Name
	case node.ListValue:
		return "list(" + strconv.Itoa(len(v.List)) + ")"
	case node.StringValue:
		return fmt.Sprintf("%q", v.String)
	case node.IntValue:
		return strconv.FormatInt(v.Int64, 10)
	case node.FloatValue:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case node.BoolValue:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Type.String()
	}
}
