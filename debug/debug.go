// Package debug gates optional trace logging behind environment variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Catalog bool
	Diff    bool
	Codec   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Catalog = boolEnv("KODAMA_DEBUG_CATALOG")
	d.Diff = boolEnv("KODAMA_DEBUG_DIFF")
	d.Codec = boolEnv("KODAMA_DEBUG_CODEC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Catalog() bool {
	return d.Catalog
}
func Diff() bool {
	return d.Diff
}
func Codec() bool {
	return d.Codec
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
