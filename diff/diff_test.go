package diff_test

import (
	"strings"
	"testing"

	"github.com/kodama-dev/kodama/diff"
	"github.com/kodama-dev/kodama/internal/modeltest"
	"github.com/kodama-dev/kodama/node"
)

func one(t *testing.T, recs []diff.Record) diff.Record {
	t.Helper()
	if len(recs) != 1 {
		for _, r := range recs {
			t.Logf("%s: %s", r.Path, r.Report)
		}
		t.Fatalf("got %d records, want 1", len(recs))
	}
	return recs[0]
}

func TestDiffSelf(t *testing.T) {
	p := modeltest.Pod()
	if recs := diff.Diff(p, p.Clone()); len(recs) != 0 {
		t.Fatalf("got %d records diffing a tree against its clone", len(recs))
	}
}

func TestDiffDeepScalarChange(t *testing.T) {
	p := modeltest.Pod()
	q := p.Clone()
	port, err := q.AtPath("spec.containers.1.lifecycle.postStart.httpGet")
	if err != nil {
		t.Fatal(err)
	}
	if err := port.Entity.Set("port", node.FromInt(81)); err != nil {
		t.Fatal(err)
	}

	r := one(t, diff.Diff(p, q))
	if r.Class != diff.ValueMismatch {
		t.Fatalf("got class %v", r.Class)
	}
	if got := r.Path.String(); got != "spec.containers.1.lifecycle.postStart.httpGet.port" {
		t.Fatalf("path %q", got)
	}
	if !strings.Contains(r.Report, "Value mismatch") || !strings.Contains(r.Report, "80 vs 81") {
		t.Fatalf("report %q", r.Report)
	}
}

func TestDiffIncompatibleKinds(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ObjectMeta")
	b := node.Make("v1", "ExecAction")

	r := one(t, diff.Diff(a, b))
	if r.Class != diff.IncompatibleTypes {
		t.Fatalf("got class %v", r.Class)
	}
	if !strings.Contains(r.Report, "Incompatible types") {
		t.Fatalf("report %q", r.Report)
	}
}

func TestDiffScalarTypeMismatch(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ObjectMeta", node.F("name", "x"))
	b := node.Make("v1", "ObjectMeta", node.F("name", 7))

	r := one(t, diff.Diff(a, b))
	if r.Class != diff.TypeMismatch {
		t.Fatalf("got class %v", r.Class)
	}
	if !strings.Contains(r.Report, "Type mismatch") || !strings.Contains(r.Report, "string vs int") {
		t.Fatalf("report %q", r.Report)
	}
}

func TestDiffAbsentVsPresent(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ObjectMeta", node.F("name", "x"))
	b := node.Make("v1", "ObjectMeta")

	r := one(t, diff.Diff(a, b))
	if r.Class != diff.ValueMismatch {
		t.Fatalf("got class %v", r.Class)
	}
	if !strings.Contains(r.Report, "absent") {
		t.Fatalf("report %q", r.Report)
	}
	if got := r.Path.String(); got != "name" {
		t.Fatalf("path %q", got)
	}
}

func TestDiffListLength(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ExecAction", node.F("command", []string{"a", "b"}))
	b := node.Make("v1", "ExecAction", node.F("command", []string{"a"}))

	// length difference reports once; no per-element descent
	r := one(t, diff.Diff(a, b))
	if r.Class != diff.LengthMismatch {
		t.Fatalf("got class %v", r.Class)
	}
	if !strings.Contains(r.Report, "Length mismatch") || !strings.Contains(r.Report, "2 elements vs 1") {
		t.Fatalf("report %q", r.Report)
	}
}

func TestDiffListElements(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ExecAction", node.F("command", []string{"a", "b", "c"}))
	b := node.Make("v1", "ExecAction", node.F("command", []string{"a", "x", "c"}))

	r := one(t, diff.Diff(a, b))
	if r.Class != diff.ValueMismatch {
		t.Fatalf("got class %v", r.Class)
	}
	if got := r.Path.String(); got != "command.1" {
		t.Fatalf("path %q", got)
	}
}

func TestDiffListElementKind(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ExecAction",
		node.F("command", node.FromList(node.FromString("a"))))
	b := node.Make("v1", "ExecAction",
		node.F("command", node.FromList(node.FromInt(1))))

	r := one(t, diff.Diff(a, b))
	if r.Class != diff.ElementMismatch {
		t.Fatalf("got class %v", r.Class)
	}
	if !strings.Contains(r.Report, "Element mismatch") {
		t.Fatalf("report %q", r.Report)
	}
}

func TestDiffMapKeys(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ObjectMeta", node.F("labels", map[string]string{"a": "1", "b": "2"}))
	b := node.Make("v1", "ObjectMeta", node.F("labels", map[string]string{"a": "1", "c": "3"}))

	// differing key sets report once for the whole map
	r := one(t, diff.Diff(a, b))
	if r.Class != diff.KeyMismatch {
		t.Fatalf("got class %v", r.Class)
	}
	if !strings.Contains(r.Report, "Key mismatch") ||
		!strings.Contains(r.Report, "-b") || !strings.Contains(r.Report, "+c") {
		t.Fatalf("report %q", r.Report)
	}
}

func TestDiffMapItems(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "ObjectMeta", node.F("labels", map[string]string{"a": "1", "b": "2"}))
	b := node.Make("v1", "ObjectMeta", node.F("labels", map[string]string{"a": "1", "b": "9"}))

	r := one(t, diff.Diff(a, b))
	if r.Class != diff.ItemMismatch {
		t.Fatalf("got class %v", r.Class)
	}
	if got := r.Path.String(); got != "labels.b" {
		t.Fatalf("path %q", got)
	}
	if !strings.Contains(r.Report, "Item mismatch") {
		t.Fatalf("report %q", r.Report)
	}
}

func TestDiffEntityKindInField(t *testing.T) {
	modeltest.Register()
	a := node.Make("v1", "Lifecycle",
		node.F("postStart", node.Make("v1", "Handler")))
	b := node.Make("v1", "Lifecycle",
		node.F("postStart", node.Make("v1", "ExecAction")))

	r := one(t, diff.Diff(a, b))
	if r.Class != diff.IncompatibleTypes {
		t.Fatalf("got class %v", r.Class)
	}
	if got := r.Path.String(); got != "postStart" {
		t.Fatalf("path %q", got)
	}
}

func TestDiffTwoChanges(t *testing.T) {
	p := modeltest.Pod()
	q := p.Clone()
	meta := q.Get("metadata").Entity
	if err := meta.Set("name", node.FromString("goodbye")); err != nil {
		t.Fatal(err)
	}
	web := q.Get("spec").Entity.Get("containers").List[0].Entity
	if err := web.Set("image", node.FromString("img/web2")); err != nil {
		t.Fatal(err)
	}

	recs := diff.Diff(p, q)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	// declared field order: metadata before spec
	if got := recs[0].Path.String(); got != "metadata.name" {
		t.Fatalf("first path %q", got)
	}
	if got := recs[1].Path.String(); got != "spec.containers.0.image" {
		t.Fatalf("second path %q", got)
	}
}
