package diff

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type renderConfig struct {
	color bool
}

type RenderOption func(*renderConfig)

// RenderColor forces colored output on or off.  The default follows whether
// stdout is a terminal.
func RenderColor(v bool) RenderOption {
	return func(c *renderConfig) { c.color = v }
}

var classColors = map[Class]func(format string, a ...any) string{
	IncompatibleTypes: color.RedString,
	TypeMismatch:      color.RedString,
	ValueMismatch:     color.YellowString,
	LengthMismatch:    color.MagentaString,
	ElementMismatch:   color.RedString,
	KeyMismatch:       color.MagentaString,
	ItemMismatch:      color.YellowString,
}

// Render writes one line per record, "path: report", optionally colored by
// classification.
func Render(w io.Writer, recs []Record, opts ...RenderOption) error {
	cfg := &renderConfig{color: isatty.IsTerminal(os.Stdout.Fd())}
	for _, opt := range opts {
		opt(cfg)
	}
	for _, rec := range recs {
		report := rec.Report
		if cfg.color {
			if f := classColors[rec.Class]; f != nil {
				report = f("%s", report)
			}
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", rec.Path.String(), report); err != nil {
			return err
		}
	}
	return nil
}
