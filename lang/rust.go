package lang

import (
	"bytes"
	"fmt"
	"os/exec"
)

// Rust is the default profile: .rs files, mod.rs aggregators with
// `pub mod <child>;` re-exports, rustfmt formatting.
func Rust() *Profile {
	return &Profile{
		Name:           "rust",
		Ext:            ".rs",
		AggregatorName: "mod.rs",
		ReExport: func(name string) string {
			return fmt.Sprintf("pub mod %s;", name)
		},
		FormatFile: rustfmt,
	}
}

// rustfmt pipes the buffer through the rustfmt binary. A missing binary or
// unparseable input surfaces as an error the caller ignores.
func rustfmt(src []byte) ([]byte, error) {
	cmd := exec.Command("rustfmt", "--edition", "2021")
	cmd.Stdin = bytes.NewReader(src)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rustfmt: %w", err)
	}
	return out.Bytes(), nil
}
