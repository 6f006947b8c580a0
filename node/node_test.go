package node_test

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/kodama-dev/kodama/internal/modeltest"
	"github.com/kodama-dev/kodama/node"
)

func TestCloneEqual(t *testing.T) {
	p := modeltest.Pod()
	q := p.Clone()
	if !node.Equal(p, q) {
		t.Fatal("clone is not equal to original")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := modeltest.Pod()
	q := p.Clone()
	spec := q.Get("spec").Entity
	web := spec.Get("containers").List[0].Entity
	if err := web.Set("image", node.FromString("img/other")); err != nil {
		t.Fatal(err)
	}
	if node.Equal(p, q) {
		t.Fatal("mutating the copy should break equality")
	}
	// original untouched
	orig := p.Get("spec").Entity.Get("containers").List[0].Entity.Get("image")
	if orig.String != "img/web" {
		t.Fatalf("original mutated: %q", orig.String)
	}
}

func TestSetUnknownField(t *testing.T) {
	m := modeltest.Meta()
	err := m.Set("wibble", node.FromString("x"))
	if !errors.Is(err, node.ErrUnknownField) {
		t.Fatalf("got %v, want ErrUnknownField", err)
	}
}

func TestSetNilClears(t *testing.T) {
	m := modeltest.Meta()
	if err := m.Set("name", nil); err != nil {
		t.Fatal(err)
	}
	if m.Get("name") != nil {
		t.Fatal("field should be absent after clearing")
	}
}

func TestEqualAbsentVsEmptyContainer(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ObjectMeta", node.F("name", "x"))
	b := node.Make("v1", "ObjectMeta", node.F("name", "x"),
		node.F("finalizers", []string{}),
		node.F("labels", map[string]string{}))
	if !node.Equal(a, b) {
		t.Fatal("absent container should equal empty container")
	}
}

func TestEqualDistinguishesKinds(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ObjectMeta", node.F("name", "x"))
	b := node.Make("v1", "ExecAction")
	if node.Equal(a, b) {
		t.Fatal("nodes of different kinds must not be equal")
	}
}

func TestEqualSequenceOrder(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ExecAction", node.F("command", []string{"a", "b"}))
	b := node.Make("v1", "ExecAction", node.F("command", []string{"b", "a"}))
	if node.Equal(a, b) {
		t.Fatal("sequence equality must be order-sensitive")
	}
}

func TestEqualScalarKindAware(t *testing.T) {
	if node.ValueEqual(node.FromInt(1), node.FromFloat(1)) {
		t.Fatal("int and float values must not compare equal")
	}
	if !node.ValueEqual(node.Null(), nil) {
		t.Fatal("null should equal absence")
	}
}
