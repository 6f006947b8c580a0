package diff

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// stringReport renders a Value mismatch between two strings.  Short strings
// are shown whole.  For longer strings a character-level diff is computed
// and used when its total edit size stays under half the shorter string;
// otherwise both values are shown whole.
func stringReport(from, to string) string {
	if len(from) < 32 && len(to) < 32 {
		return fmt.Sprintf("%q vs %q", from, to)
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffSize := 0
	var frags []string
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			diffSize += len(d.Text)
			frags = append(frags, "-"+fmt.Sprintf("%q", d.Text))
		case diffpatch.DiffInsert:
			diffSize += len(d.Text)
			frags = append(frags, "+"+fmt.Sprintf("%q", d.Text))
		}
	}
	if diffSize == 0 || diffSize > min(len(from), len(to))/2 {
		return fmt.Sprintf("%q vs %q", from, to)
	}
	return "edits " + strings.Join(frags, " ")
}
