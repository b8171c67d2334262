// Package lang describes the target language a generator emits: the file
// extension, the per-directory aggregator file, the re-export declaration
// that aggregator carries for each child module, and the source formatter.
package lang

// Profile is one target language.
type Profile struct {
	// Name identifies the profile ("rust", "go").
	Name string
	// Ext is the source file extension, dot included.
	Ext string
	// AggregatorName is the file written inside each module directory.
	AggregatorName string
	// ReExport renders the aggregator's declaration for one child module
	// (already case-converted). Nil means the language needs none.
	ReExport func(name string) string
	// FormatFile formats a source buffer. Formatting is cosmetic: callers
	// must treat an error as "keep the original buffer".
	FormatFile func(src []byte) ([]byte, error)
}
