package codec

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/kodama-dev/kodama/node"
)

// ToJSON renders a tree as JSON text in the minimal generic form.
func ToJSON(n *node.Node) (string, error) {
	m, err := ToGeneric(n)
	if err != nil {
		return "", err
	}
	d, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

// FromJSON reconstructs a tree from JSON text, with the same descriptor
// selection and fail-fast contract as FromGeneric.
func FromJSON(text string, opts ...Option) (*node.Node, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decode json")
	}
	return FromGeneric(m, opts...)
}
