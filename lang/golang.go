package lang

import "mvdan.cc/gofumpt/format"

// Go targets generators that emit Go source: .go files formatted in-process
// with gofumpt. Go needs no re-export declarations, so aggregator files
// carry the module's own contents only.
func Go() *Profile {
	return &Profile{
		Name:           "go",
		Ext:            ".go",
		AggregatorName: "mod.go",
		FormatFile: func(src []byte) ([]byte, error) {
			return format.Source(src, format.Options{})
		},
	}
}
