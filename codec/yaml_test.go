package codec_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodama-dev/kodama/codec"
	"github.com/kodama-dev/kodama/internal/modeltest"
	"github.com/kodama-dev/kodama/node"
)

func TestYAMLRoundTrip(t *testing.T) {
	p := modeltest.Pod()
	text, err := codec.ToYAML(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "---\n"), "missing document separator:\n%s", text)

	docs, err := codec.FromYAML(text)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.True(t, node.Equal(p, docs[0]), "round trip through YAML changed the tree")
}

func TestYAMLMultiDoc(t *testing.T) {
	p := modeltest.Pod()
	q := p.Clone()
	meta := q.Get("metadata").Entity
	require.NoError(t, meta.Set("name", node.FromString("goodbye")))

	text, err := codec.ToYAML(p, q)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(text, "---\n"))

	docs, err := codec.FromYAML(text)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	// stream order is preserved
	assert.Equal(t, "hello", docs[0].Get("metadata").Entity.Get("name").String)
	assert.Equal(t, "goodbye", docs[1].Get("metadata").Entity.Get("name").String)
}

func TestYAMLBadDocAbortsLoad(t *testing.T) {
	modeltest.Register()
	text := `---
apiVersion: v1
kind: Pod
---
apiVersion: v1
kind: Wibble
`
	docs, err := codec.FromYAML(text)
	assert.Nil(t, docs)
	assert.ErrorIs(t, err, codec.ErrUnknownKind)
}

func TestYAMLMissingRequiredAborts(t *testing.T) {
	modeltest.Register()
	text := `---
apiVersion: v1
kind: Pod
spec:
  nodeName: maxwell
`
	_, err := codec.FromYAML(text)
	require.Error(t, err)
	assert.ErrorIs(t, err, codec.ErrMissingRequired)
	var se *codec.StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "containers", se.Field)
}

func TestFromYAMLFile(t *testing.T) {
	p := modeltest.Pod()
	text, err := codec.ToYAML(p)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "pod.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	docs, err := codec.FromYAMLFile(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.True(t, node.Equal(p, docs[0]))
}

func TestFromYAMLFileMissing(t *testing.T) {
	_, err := codec.FromYAMLFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
