// Package api holds the public data model of the generator runtime: the
// module tree produced by generation functions and the engine payload a
// host sends with a generate request.
package api

import "strings"

// Module is one generated compilation unit. A module with submodules
// materializes as a directory with an aggregator file; a module without
// submodules materializes as a single file. Submodule order is insertion
// order and is preserved in output.
type Module struct {
	// Name of the module. File and directory names are derived from it.
	Name string `json:"name"`
	// Contents is the module's own literal source text.
	Contents string `json:"contents"`
	// Submodules nested under this module.
	Submodules []*Module `json:"submodules,omitempty"`
}

// NewModule creates a leaf module.
func NewModule(name, contents string) *Module {
	return &Module{Name: name, Contents: contents}
}

// Add appends a submodule and returns the parent for chaining.
func (m *Module) Add(sub *Module) *Module {
	m.Submodules = append(m.Submodules, sub)
	return m
}

// Flatten collapses the whole tree into a single source text: each
// submodule is flattened in order, then the module's own contents follow.
// Used by the single-file output layout.
func (m *Module) Flatten() string {
	var b strings.Builder
	m.flattenInto(&b)
	return b.String()
}

func (m *Module) flattenInto(b *strings.Builder) {
	for _, sub := range m.Submodules {
		sub.flattenInto(b)
	}
	b.WriteString(m.Contents)
}
