package main

import (
	"fmt"
	"os"

	"github.com/ddddddO/gtree"
	"github.com/spf13/cobra"

	"github.com/spacedriveapp/gensdk/api"
	"github.com/spacedriveapp/gensdk/dmmf"
	"github.com/spacedriveapp/gensdk/internal/casing"
	"github.com/spacedriveapp/gensdk/internal/scaffold"
	"github.com/spacedriveapp/gensdk/lang"
	"github.com/spacedriveapp/gensdk/query"
	"github.com/spacedriveapp/gensdk/schema"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the module tree the generator would materialize",
	RunE: func(cmd *cobra.Command, args []string) error {
		project, err := loadProject()
		if err != nil {
			return err
		}
		input, err := project.engineInput()
		if err != nil {
			return err
		}

		sch, err := schema.Parse(input.Datamodel)
		if err != nil {
			return fmt.Errorf("parse schema: %w", err)
		}
		doc := dmmf.FromParts(query.Build(sch, true))

		root, err := scaffold.Generate(api.GenerateArgs{Schema: sch, DMMF: doc, Input: input}, input.Generator.Config)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		profile := lang.Rust()
		if len(root.Submodules) == 0 {
			// a childless root collapses to a single file
			tree := gtree.NewRoot(project.Output + profile.Ext)
			return gtree.OutputProgrammably(os.Stdout, tree)
		}

		tree := gtree.NewRoot(project.Output)
		addModule(tree, root, profile)
		return gtree.OutputProgrammably(os.Stdout, tree)
	},
}

// addModule mirrors the folder materialization: submodules become child
// branches, leaves get their file name, non-leaves get an aggregator entry.
func addModule(node *gtree.Node, m *api.Module, profile *lang.Profile) {
	for _, sub := range m.Submodules {
		name := casing.Snake(sub.Name)
		if len(sub.Submodules) == 0 {
			node.Add(name + profile.Ext)
			continue
		}
		addModule(node.Add(name), sub, profile)
	}
	node.Add(profile.AggregatorName)
}

func init() {
	rootCmd.AddCommand(planCmd)
}
