// Package macro holds the macro table: a mapping from name to macro
// definition, kept separate from the value environment, exactly as the
// spec requires ("a separate namespace from ordinary bindings"). The
// shape mirrors the teacher's own macroTable in liswat/parser.go, a
// map[Symbol]*Callable consulted before ordinary symbol resolution.
package macro

import "github.com/nfiedler-labs/lumen/ast"

// Macro is one defmacro definition: a fixed parameter list and an
// unevaluated body, expanded anew on every call site.
type Macro struct {
	Name   string
	Params []string
	Body   []ast.Expr
}

// Table is the interpreter-wide macro namespace.
type Table struct {
	macros map[string]*Macro
}

// NewTable returns an empty macro table.
func NewTable() *Table {
	return &Table{macros: make(map[string]*Macro)}
}

// Define installs or replaces a macro definition.
func (t *Table) Define(m *Macro) {
	t.macros[m.Name] = m
}

// Lookup returns the macro bound to name, if any.
func (t *Table) Lookup(name string) (*Macro, bool) {
	m, ok := t.macros[name]
	return m, ok
}

// Has reports whether name is bound in the macro table, used by the
// hygiene pass to avoid renaming references to other macros.
func (t *Table) Has(name string) bool {
	_, ok := t.macros[name]
	return ok
}
