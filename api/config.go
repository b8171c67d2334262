package api

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// ConfigMap is the open generator configuration block: arbitrary keys, only
// a known subset interpreted. Unknown keys are carried through untouched so
// generation functions can define their own options.
type ConfigMap map[string]any

// ClientFormat selects the output layout.
type ClientFormat string

const (
	// ClientFormatFolder materializes the module tree as a directory tree.
	ClientFormatFolder ClientFormat = "folder"
	// ClientFormatFile flattens the module tree into a single file.
	ClientFormatFile ClientFormat = "file"
)

// UnmarshalJSON validates the enum; an absent key never reaches here.
func (f *ClientFormat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ClientFormat(s) {
	case ClientFormatFolder, ClientFormatFile:
		*f = ClientFormat(s)
		return nil
	}
	return fmt.Errorf("invalid clientFormat %q (must be \"folder\" or \"file\")", s)
}

// SharedConfig is the narrow typed projection of a ConfigMap: the options
// every generator shares, regardless of what else the map carries.
type SharedConfig struct {
	ClientFormat ClientFormat `json:"clientFormat"`
}

// SharedConfigFrom projects the open config map onto SharedConfig. Unknown
// keys are ignored; a present-but-invalid known key is an error.
func SharedConfigFrom(config ConfigMap) (SharedConfig, error) {
	shared := SharedConfig{ClientFormat: ClientFormatFolder}

	data, err := json.Marshal(config)
	if err != nil {
		return shared, fmt.Errorf("encode generator config: %w", err)
	}
	if err := json.Unmarshal(data, &shared); err != nil {
		return shared, fmt.Errorf("decode generator config: %w", err)
	}
	return shared, nil
}

// ValidateOutput enforces the layout/path-shape invariant: folder layout
// needs an extensionless path, file layout needs a path with an extension.
func (c SharedConfig) ValidateOutput(path string) error {
	ext := filepath.Ext(path)
	switch c.ClientFormat {
	case ClientFormatFolder:
		if ext != "" {
			return fmt.Errorf("the output path must be a directory when using the folder format, got %q", path)
		}
	case ClientFormatFile:
		if ext == "" {
			return fmt.Errorf("the output path must be a file when using the file format, got %q", path)
		}
	}
	return nil
}
