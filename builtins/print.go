package builtins

import (
	"strings"

	"github.com/nfiedler-labs/lumen/lerr"
	"github.com/nfiedler-labs/lumen/object"
)

// WriteFunc sends text to whatever sink the host currently has attached
// (stdout unless the host has installed its own); see
// eval.Interpreter.Output and interp.Session.SetPrintSink.
type WriteFunc func(s string)

func printEntries(write WriteFunc) []entry {
	return []entry{
		{"print", 0, -1, func(a []object.Value) (object.Value, *lerr.Error) {
			parts := make([]string, len(a))
			for i, v := range a {
				parts[i] = object.Format(v, true)
			}
			write(strings.Join(parts, " ") + "\n")
			return object.Nil, nil
		}},
		{"str", 0, -1, func(a []object.Value) (object.Value, *lerr.Error) {
			var b strings.Builder
			for _, v := range a {
				b.WriteString(object.Format(v, true))
			}
			return object.String(b.String()), nil
		}},
	}
}
