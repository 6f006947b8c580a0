package typecheck_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodama-dev/kodama/internal/modeltest"
	"github.com/kodama-dev/kodama/node"
	"github.com/kodama-dev/kodama/typecheck"
)

func TestCleanTreeHasNoWarnings(t *testing.T) {
	p := modeltest.Pod()
	ws := typecheck.Check(p)
	var msgs []string
	for _, w := range ws {
		msgs = append(msgs, w.Message)
	}
	assert.Empty(t, ws, "warnings: %s", strings.Join(msgs, "\n"))
}

func TestRequiredFieldUnset(t *testing.T) {
	modeltest.Register()
	ref := node.Make("v1", "OwnerReference",
		node.F("apiVersion", "v1"),
		node.F("kind", "OwnerReference"),
		node.F("name", "wibble"),
		node.F("uid", "1"),
	)
	require.NoError(t, ref.Set("kind", nil))

	ws := typecheck.Check(ref)
	require.Len(t, ws, 1)
	assert.Equal(t, "OwnerReference", ws[0].Kind)
	assert.Equal(t, "kind", ws[0].Field)
	assert.Contains(t, ws[0].Message, "should have been")
	assert.Contains(t, ws[0].Message, "`string`")
}

func TestNullOptionalMap(t *testing.T) {
	m := modeltest.Meta()
	require.NoError(t, m.Set("annotations", node.Null()))

	ws := typecheck.Check(m)
	require.Len(t, ws, 1)
	assert.Equal(t, "ObjectMeta", ws[0].Kind)
	assert.Equal(t, "annotations", ws[0].Field)
	assert.Contains(t, ws[0].Message, "empty dict")
}

func TestNullOptionalList(t *testing.T) {
	m := modeltest.Meta()
	require.NoError(t, m.Set("finalizers", node.Null()))

	ws := typecheck.Check(m)
	require.Len(t, ws, 1)
	assert.Equal(t, "finalizers", ws[0].Field)
	assert.Contains(t, ws[0].Message, "empty list")
}

func TestWrongScalarKind(t *testing.T) {
	modeltest.Register()
	m := node.Make("v1", "ObjectMeta", node.F("name", 5))

	ws := typecheck.Check(m)
	require.Len(t, ws, 1)
	assert.Equal(t, "name", ws[0].Field)
	assert.Contains(t, ws[0].Message, "expecting")
	assert.Contains(t, ws[0].Message, "`string`")
}

func TestWrongElementInEntityList(t *testing.T) {
	modeltest.Register()
	ps := node.Make("v1", "PodSpec",
		node.F("containers", node.FromList(node.FromString("asdf"))),
	)

	ws := typecheck.Check(ps)
	require.Len(t, ws, 1)
	assert.Len(t, ws[0].Path, 2)
	assert.Equal(t, node.IndexStep(0), ws[0].Path[1])
	assert.Contains(t, ws[0].Message, "expecting")
}

func TestBrokenEntityInsideList(t *testing.T) {
	modeltest.Register()
	own := node.Make("v1", "OwnerReference",
		node.F("apiVersion", 1), // wrong kind
		node.F("kind", "OwnerReference"),
		node.F("name", "wibble"),
		node.F("uid", "345"),
	)
	m := node.Make("v1", "ObjectMeta", node.F("ownerReferences", node.L(own)))

	ws := typecheck.Check(m)
	require.Len(t, ws, 1)
	// re-based under the element path: ownerReferences.0.apiVersion
	assert.Len(t, ws[0].Path, 3)
	assert.Equal(t, node.IndexStep(0), ws[0].Path[1])
	assert.Equal(t, "OwnerReference", ws[0].Kind)
}

func TestWrongEntityKindInList(t *testing.T) {
	modeltest.Register()
	ps := node.Make("v1", "PodSpec",
		node.F("containers", node.L(node.Make("v1", "ObjectMeta"))),
	)

	ws := typecheck.Check(ps)
	require.Len(t, ws, 1)
	assert.Contains(t, ws[0].Message, "expecting `Container`")
	// mismatched element reports once, without descending
	assert.Len(t, ws[0].Path, 2)
}

func TestRequiredContainerEmpty(t *testing.T) {
	modeltest.Register()
	ps := node.Make("v1", "PodSpec", node.F("containers", node.L()))

	ws := typecheck.Check(ps)
	require.Len(t, ws, 1)
	assert.Contains(t, ws[0].Message, "empty")
	assert.Equal(t, "containers", ws[0].Field)
}

func TestMismatchedScalarEntityReference(t *testing.T) {
	modeltest.Register()
	p := node.Make("v1", "Pod",
		node.F("apiVersion", "v1"),
		node.F("kind", "Pod"),
		node.F("metadata", "not-an-object"),
	)

	ws := typecheck.Check(p)
	require.Len(t, ws, 1)
	assert.Contains(t, ws[0].Message, "expecting `ObjectMeta`")
}
