package api

import "os"

// EngineInput is the payload of a generate request: the datamodel text plus
// the configuration of the generator being invoked.
type EngineInput struct {
	// Datamodel is the full schema definition text.
	Datamodel string `json:"datamodel"`
	// SchemaPath is where the host read the datamodel from.
	SchemaPath string `json:"schemaPath"`
	// Version of the engine that sent the request.
	Version string `json:"version"`
	// Generator is the block this plugin was invoked for.
	Generator GeneratorSpec `json:"generator"`
	// OtherGenerators lists the remaining generator blocks in the schema.
	OtherGenerators []GeneratorSpec `json:"otherGenerators,omitempty"`
}

// GeneratorSpec is one generator block as configured in the schema.
type GeneratorSpec struct {
	Name            string     `json:"name"`
	Provider        EnvValue   `json:"provider"`
	Output          *EnvValue  `json:"output"`
	Config          ConfigMap  `json:"config"`
	BinaryTargets   []EnvValue `json:"binaryTargets,omitempty"`
	PreviewFeatures []string   `json:"previewFeatures,omitempty"`
}

// EnvValue is a config value given either literally or via an environment
// variable reference.
type EnvValue struct {
	FromEnvVar *string `json:"fromEnvVar"`
	Value      *string `json:"value"`
}

// Get resolves the value, consulting the environment when only a variable
// name was given. Returns "" for a nil receiver or an unresolvable value.
func (e *EnvValue) Get() string {
	if e == nil {
		return ""
	}
	if e.Value != nil && *e.Value != "" {
		return *e.Value
	}
	if e.FromEnvVar != nil {
		return os.Getenv(*e.FromEnvVar)
	}
	return ""
}
