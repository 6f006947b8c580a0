package codec

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"

	"github.com/kodama-dev/kodama/debug"
	"github.com/kodama-dev/kodama/node"
)

// ToYAML renders trees as a multi-document YAML stream, each document
// prefixed with the "---" separator, in argument order.
func ToYAML(nodes ...*node.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		m, err := ToGeneric(n)
		if err != nil {
			return "", err
		}
		d, err := yaml.MarshalWithOptions(m, yaml.Indent(2), yaml.IndentSequence(true))
		if err != nil {
			return "", err
		}
		b.WriteString("---\n")
		b.Write(d)
	}
	return b.String(), nil
}

// FromYAML reconstructs every document in a YAML stream, in stream order.
// Any document's failure aborts the whole load.
func FromYAML(text string, opts ...Option) ([]*node.Node, error) {
	return FromYAMLReader(strings.NewReader(text), opts...)
}

// FromYAMLReader is FromYAML over an open stream.  The caller owns the
// stream; FromYAMLReader does not close it.
func FromYAMLReader(r io.Reader, opts ...Option) ([]*node.Node, error) {
	dec := yaml.NewDecoder(r)
	var res []*node.Node
	for {
		var m map[string]any
		err := dec.Decode(&m)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
		n, err := FromGeneric(m, opts...)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	if debug.Codec() {
		debug.Logf("yaml load: %d documents\n", len(res))
	}
	return res, nil
}

// FromYAMLFile is FromYAML over a file path.  The file is closed on every
// return path, including mid-parse failure.
func FromYAMLFile(path string, opts ...Option) ([]*node.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromYAMLReader(f, opts...)
}
