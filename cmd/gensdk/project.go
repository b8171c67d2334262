package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spacedriveapp/gensdk/api"
)

// projectConfig is the offline development config, read from gensdk.yml.
// Flags override anything set here.
type projectConfig struct {
	Schema string         `yaml:"schema"`
	Output string         `yaml:"output"`
	Config map[string]any `yaml:"config"`
}

// loadProject reads the project file and applies flag overrides. A missing
// file is only an error when the user pointed at it explicitly.
func loadProject() (*projectConfig, error) {
	project := &projectConfig{Output: defaultOutput}

	data, err := os.ReadFile(projectPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, project); err != nil {
			return nil, fmt.Errorf("parse %s: %w", projectPath, err)
		}
	case os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("project"):
		// no project file, flags only
	default:
		return nil, fmt.Errorf("read project file: %w", err)
	}

	if schemaPath != "" {
		project.Schema = schemaPath
	}
	if outputPath != "" {
		project.Output = outputPath
	}
	if formatName != "" {
		if project.Config == nil {
			project.Config = map[string]any{}
		}
		project.Config["clientFormat"] = formatName
	}

	if project.Schema == "" {
		return nil, fmt.Errorf("no schema file given (use --schema or %s)", projectPath)
	}
	if project.Output == "" {
		project.Output = defaultOutput
	}

	return project, nil
}

// engineInput assembles the payload a host would send for this project.
func (p *projectConfig) engineInput() (*api.EngineInput, error) {
	datamodel, err := os.ReadFile(p.Schema)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	output := p.Output
	return &api.EngineInput{
		Datamodel:  string(datamodel),
		SchemaPath: p.Schema,
		Generator: api.GeneratorSpec{
			Name:   "client",
			Output: &api.EnvValue{Value: &output},
			Config: p.Config,
		},
	}, nil
}
