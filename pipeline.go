package gensdk

import (
	"fmt"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"

	"github.com/spacedriveapp/gensdk/api"
	"github.com/spacedriveapp/gensdk/dmmf"
	"github.com/spacedriveapp/gensdk/internal/emit"
	"github.com/spacedriveapp/gensdk/query"
	"github.com/spacedriveapp/gensdk/schema"
)

// Execute runs the full generation pipeline against fs: compile the
// datamodel, derive the query schema and metadata document, validate the
// configured output against the selected layout, run the generation
// function, then clean, materialize and format the output.
//
// Only a generation-function failure is returned as a plain error; every
// other failure is wrapped as fatal and makes Run abort the process.
func (g *Generator) Execute(fs billy.Filesystem, input *api.EngineInput) error {
	// the host validated the schema before invoking any generator, so a
	// parse failure is an internal invariant violation, not user error
	sch, err := schema.Parse(input.Datamodel)
	if err != nil {
		return fatalf("datamodel invalid after host validation: %w", err)
	}

	qs := query.Build(sch, true)
	doc := dmmf.FromParts(qs)

	output := input.Generator.Output.Get()
	if output == "" {
		return fatalf("generator %s has no output path configured", g.Name)
	}

	shared, err := api.SharedConfigFrom(input.Generator.Config)
	if err != nil {
		return fatalf("generator config: %w", err)
	}
	if err := shared.ValidateOutput(output); err != nil {
		return &fatalError{err: err}
	}

	root, err := g.Generate(api.GenerateArgs{Schema: sch, DMMF: doc, Input: input}, input.Generator.Config)
	if err != nil {
		return err
	}

	outputPath, err := filepath.Abs(output)
	if err != nil {
		return fatalf("resolve output path %s: %w", output, err)
	}

	emit.Clean(fs, outputPath)

	header := fmt.Sprintf("// File generated by %s. DO NOT EDIT\n\n", g.Name)

	var plan emit.Plan
	switch shared.ClientFormat {
	case api.ClientFormatFolder:
		plan = emit.Folder(root, outputPath, header, g.profile())
	case api.ClientFormatFile:
		plan = emit.File(root, outputPath, header)
	}

	if err := emit.Apply(fs, plan); err != nil {
		return &fatalError{err: err}
	}

	emit.FormatAll(fs, g.profile(), plan.Paths())

	return nil
}
